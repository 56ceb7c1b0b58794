package handlers

import (
	"net/http"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
)

// PatternsHandler serves the embedded risk pattern library, so operators can
// audit what the detector matches against without reading the binary.
type PatternsHandler struct {
	patterns []domain.RiskPattern
}

func NewPatternsHandler(patterns []domain.RiskPattern) *PatternsHandler {
	return &PatternsHandler{patterns: patterns}
}

func (h *PatternsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"patterns": h.patterns,
		"count":    len(h.patterns),
	})
}
