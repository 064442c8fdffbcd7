package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"rental-optimizer/service"
)

type MarketHandler struct {
	service *service.MarketService
	log     *zap.Logger
}

func NewMarketHandler(service *service.MarketService, log *zap.Logger) *MarketHandler {
	return &MarketHandler{service: service, log: log}
}

func (h *MarketHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.ListCities())
}

func (h *MarketHandler) Markers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	markers, err := h.service.Markers(r.Context(), r.PathValue("city"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(markers)
}

func (h *MarketHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	overview, err := h.service.Overview(r.Context(), r.PathValue("city"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Encode into a buffer first so a failure does not leave a half-written
	// 200 response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(overview); err != nil {
		h.log.Error("failed to encode overview response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("failed to write overview response", zap.Error(err))
	}
}

func (h *MarketHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	comparison, err := h.service.Comparison(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comparison)
}
