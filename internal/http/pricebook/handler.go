package pricebook

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/fenestra/internal/http/request"
	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type Handler struct {
	svc *pricebook.Service
}

func NewHandler(svc *pricebook.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{type}", h.suggest)
	r.Put("/{type}", h.learn)
}

type ratesResponse struct {
	WindowType window.Type `json:"windowType"`
	BasePrice  float64     `json:"basePrice"`
	SqFtPrice  float64     `json:"sqFtPrice"`
}

func windowType(r *http.Request) window.Type {
	return window.Type(chi.URLParam(r, "type"))
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	t := windowType(r)

	rates, ok, err := h.svc.Suggest(r.Context(), t)
	if err != nil {
		slog.Error("failed to suggest rates", "type", t, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if !ok {
		http.Error(w, "no rates stored for "+string(t), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ratesResponse{
		WindowType: t,
		BasePrice:  rates.BasePrice,
		SqFtPrice:  rates.SqFtPrice,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type learnRequest struct {
	BasePrice *float64 `json:"basePrice" validate:"required,gte=0"`
	SqFtPrice *float64 `json:"sqFtPrice" validate:"required,gte=0"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	t := windowType(r)
	if !t.Known() {
		http.Error(w, "unknown window type: "+string(t), http.StatusBadRequest)
		return
	}

	var req learnRequest
	if err := request.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.Learn(r.Context(), t, pricebook.Rates{BasePrice: *req.BasePrice, SqFtPrice: *req.SqFtPrice})
	if err != nil {
		if errors.Is(err, pricebook.ErrInvalidRates) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to learn rates", "type", t, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
