package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
)

type CriterionHandler struct {
	calc *service.CriterionCalculator
}

func NewCriterionHandler(calc *service.CriterionCalculator) *CriterionHandler {
	return &CriterionHandler{calc: calc}
}

// Evaluate runs the simple pre-filled-answers formula.
func (h *CriterionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req service.CriterionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.calc.Evaluate(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStatementEmpty),
			errors.Is(err, service.ErrInvalidRiskLevel):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to evaluate criterion input")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
