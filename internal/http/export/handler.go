package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/export"
	"github.com/MrJamesThe3rd/fenestra/internal/http/request"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
)

const summaryFile = "summary.txt"

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.metadata)
	r.Post("/download", h.download)
}

type exportRequest struct {
	Status    *string    `json:"status" validate:"omitempty,oneof=draft submitted approved rejected archived"`
	Query     string     `json:"q"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (r exportRequest) filter() quotation.ListFilter {
	f := quotation.ListFilter{
		Query:     r.Query,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		f.Status = new(quotation.Status(*r.Status))
	}

	return f
}

type itemResponse struct {
	ID         uuid.UUID        `json:"id"`
	Number     string           `json:"quotationNumber"`
	Status     quotation.Status `json:"status"`
	ClientName string           `json:"clientName"`
	GrandTotal float64          `json:"grandTotal"`
	Filename   string           `json:"filename,omitempty"`
}

type exportMetadataResponse struct {
	Quotations []itemResponse `json:"quotations"`
	Summary    string         `json:"summary"`
}

func toItemResponse(item export.Item) itemResponse {
	q := item.Quotation

	resp := itemResponse{
		ID:         q.ID,
		Number:     q.Number,
		Status:     q.Status,
		ClientName: q.Client.Name,
		GrandTotal: q.Pricing.GrandTotal,
	}

	if item.FilePath != "" {
		resp.Filename = filepath.Base(item.FilePath)
	}

	return resp
}

// run renders the matching quotations into a temporary directory. The caller
// removes the directory.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) ([]export.Item, string, bool) {
	var req exportRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, "", false
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		http.Error(w, "end_date must not be before start_date", http.StatusBadRequest)
		return nil, "", false
	}

	tmpDir, err := os.MkdirTemp("", "fenestra-export-*")
	if err != nil {
		slog.Error("failed to create export directory", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, "", false
	}

	items, err := h.svc.ExportBatch(r.Context(), req.filter(), tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		slog.Error("failed to export quotations", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, "", false
	}

	return items, tmpDir, true
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	items, tmpDir, ok := h.run(w, r)
	if !ok {
		return
	}
	defer os.RemoveAll(tmpDir)

	resp := exportMetadataResponse{
		Quotations: make([]itemResponse, 0, len(items)),
		Summary:    h.svc.GenerateSummary(items),
	}

	for _, item := range items {
		resp.Quotations = append(resp.Quotations, toItemResponse(item))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	items, tmpDir, ok := h.run(w, r)
	if !ok {
		return
	}
	defer os.RemoveAll(tmpDir)

	summary := h.svc.GenerateSummary(items)
	if err := os.WriteFile(filepath.Join(tmpDir, summaryFile), []byte(summary), 0o644); err != nil {
		slog.Error("failed to write summary", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"quotations_%s.zip\"", time.Now().Format("20060102")))

	zipWriter := zip.NewWriter(w)
	defer zipWriter.Close()

	if err := addDir(zipWriter, tmpDir); err != nil {
		slog.Error("failed to create zip", "error", err)
	}
}

func addDir(zw *zip.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if err := addFile(zw, filepath.Join(dir, e.Name()), e.Name()); err != nil {
			return err
		}
	}

	return nil
}

func addFile(zw *zip.Writer, path, name string) error {
	zf, err := zw.Create(name)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(zf, f)

	return err
}
