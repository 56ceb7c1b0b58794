package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
)

// DetectHandler runs both detectors over free text, outside any interview.
// Useful for auditing the pattern library and for callers that only want the
// signal scan.
type DetectHandler struct {
	risk *service.RiskPatternDetector
	soft *service.SoftContradictionDetector
}

func NewDetectHandler(risk *service.RiskPatternDetector, soft *service.SoftContradictionDetector) *DetectHandler {
	return &DetectHandler{risk: risk, soft: soft}
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Risk               domain.RiskReport          `json:"risk"`
	SoftContradictions []domain.SoftContradiction `json:"soft_contradictions"`
}

func (h *DetectHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text must be non-empty")
		return
	}

	report, err := h.risk.DetectText(r.Context(), req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "risk detection failed")
		return
	}

	obj := domain.NewDiscernmentObject(req.Text, domain.ThemeSurvivalStability)
	findings, err := h.soft.Detect(r.Context(), obj)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "soft contradiction detection failed")
		return
	}
	if findings == nil {
		findings = []domain.SoftContradiction{}
	}

	writeJSON(w, http.StatusOK, detectResponse{Risk: report, SoftContradictions: findings})
}
