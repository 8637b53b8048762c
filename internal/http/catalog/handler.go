package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

// Handler serves the static reference data a form needs to build a quotation.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.catalog)
}

type windowTypeResponse struct {
	Type  window.Type `json:"type"`
	Title string      `json:"title"`
}

type catalogResponse struct {
	WindowTypes      []windowTypeResponse `json:"windowTypes"`
	FrameMultipliers []pricing.Rate       `json:"frameMultipliers"`
	GlassSurcharges  []pricing.Rate       `json:"glassSurcharges"`
	SqMmPerSqFt      float64              `json:"sqMmPerSqFt"`
	KgPerSqFt        float64              `json:"kgPerSqFt"`
}

func (h *Handler) catalog(w http.ResponseWriter, _ *http.Request) {
	types := make([]windowTypeResponse, 0, len(window.Types))
	for _, t := range window.Types {
		types = append(types, windowTypeResponse{Type: t, Title: t.Title()})
	}

	frames, glass := pricing.Tables()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(catalogResponse{
		WindowTypes:      types,
		FrameMultipliers: frames,
		GlassSurcharges:  glass,
		SqMmPerSqFt:      pricing.MM2PerSqFt,
		KgPerSqFt:        pricing.KgPerSqFt,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
