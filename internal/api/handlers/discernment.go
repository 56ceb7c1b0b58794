package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/service"
)

// DiscernmentHandler exposes the non-interactive operations: theme
// classification and scoring of an externally supplied discernment object.
// The interview itself is a blocking conversational loop and lives in the
// CLI, not behind HTTP.
type DiscernmentHandler struct {
	classifier *service.ThemeClassifier
	scoring    *service.ScoringEngine
}

func NewDiscernmentHandler(classifier *service.ThemeClassifier, scoring *service.ScoringEngine) *DiscernmentHandler {
	return &DiscernmentHandler{classifier: classifier, scoring: scoring}
}

type classifyRequest struct {
	Statement string `json:"statement"`
}

type classifyResponse struct {
	Theme domain.Theme `json:"theme"`
}

func (h *DiscernmentHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Statement) == "" {
		writeError(w, http.StatusBadRequest, "statement must be non-empty")
		return
	}

	theme := h.classifier.Classify(r.Context(), req.Statement)
	writeJSON(w, http.StatusOK, classifyResponse{Theme: theme})
}

// Evaluate scores a discernment object supplied directly, the path used by
// callers that filled the record outside an interview. Absent enum fields
// default to the same values a fresh session starts with.
func (h *DiscernmentHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var obj domain.DiscernmentObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(obj.OriginalStatement) == "" {
		writeError(w, http.StatusBadRequest, "original_statement must be non-empty")
		return
	}

	obj.EnsureEvaluationDefaults()
	writeJSON(w, http.StatusOK, h.scoring.Evaluate(&obj))
}
