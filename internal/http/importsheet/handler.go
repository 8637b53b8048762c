package importsheet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/importer"
	"github.com/MrJamesThe3rd/fenestra/internal/importer/sheet"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const maxUpload = 10 << 20

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importSheet)
}

type importResponse struct {
	Imported    int                    `json:"imported"`
	QuotationID *uuid.UUID             `json:"quotationId,omitempty"`
	WindowSpecs []window.Specification `json:"windowSpecs"`
}

// importSheet parses an uploaded measurement sheet. Without quotation_id the
// resolved specifications are returned for review; with it they are appended
// to that quotation.
func (h *Handler) importSheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rawID := r.FormValue("quotation_id")
	if rawID == "" {
		specs, err := h.svc.Import(format, file)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, importResponse{Imported: len(specs), WindowSpecs: specs})

		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		http.Error(w, "invalid quotation_id", http.StatusBadRequest)
		return
	}

	q, n, err := h.svc.ImportInto(r.Context(), id, format, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{Imported: n, QuotationID: &q.ID, WindowSpecs: q.Specs})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotation.ErrNotFound):
		http.Error(w, "quotation not found", http.StatusNotFound)
	case errors.Is(err, sheet.ErrUnknownFormat),
		errors.Is(err, sheet.ErrInvalidCount),
		errors.Is(err, importer.ErrNoRows):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, window.ErrInvalidDimensions),
		errors.Is(err, window.ErrInvalidPricing),
		errors.Is(err, window.ErrInvalidQuantity),
		errors.Is(err, window.ErrInvalidLayout):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("failed to import sheet", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
