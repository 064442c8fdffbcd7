package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rental-optimizer/dataset"
	"rental-optimizer/domain"
	"rental-optimizer/service"
)

type AnalysisHandler struct {
	calculator  *service.CalculatorService
	comparisons *service.ComparisonService
}

func NewAnalysisHandler(
	calculator *service.CalculatorService,
	comparisons *service.ComparisonService,
) *AnalysisHandler {
	return &AnalysisHandler{calculator: calculator, comparisons: comparisons}
}

// computeRequest is a scenario plus the strategy to evaluate it under.
type computeRequest struct {
	domain.Scenario
	Strategy domain.Strategy `json:"strategy"`
}

func (h *AnalysisHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.calculator.Compute(req.Scenario, req.Strategy)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *AnalysisHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var scenario domain.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.comparisons.Compare(scenario)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

const defaultHistoryLimit = 20

func (h *AnalysisHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.calculator.History(limit))
}

// writeServiceError maps service errors onto status codes. Validation
// failures are the form's problem, unknown cities are a 404, anything else
// stays a 500 without leaking details.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dataset.ErrCityNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
