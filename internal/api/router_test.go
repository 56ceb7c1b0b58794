package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"go.uber.org/zap"
)

// newTestApp builds a fresh App with default configuration: no external
// providers, no API key, default rate limits.
func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(zap.NewNop())
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	rec := doJSON(t, app, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body = %s", got)
	}
}

func TestMetricsEndpointCountsRequests(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, http.MethodGet, "/health", "")

	rec := doJSON(t, app, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["request_count"].(float64) < 1 {
		t.Errorf("request_count = %v, want >= 1", resp["request_count"])
	}
}

func TestClassifyEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/v1/classify",
		`{"statement": "Sé que está mal pero quiero mentir en mi declaración"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Theme domain.Theme `json:"theme"`
	}
	decodeBody(t, rec, &resp)
	if resp.Theme != domain.ThemeEthicsValues {
		t.Errorf("theme = %s, want %s", resp.Theme, domain.ThemeEthicsValues)
	}

	rec = doJSON(t, app, http.MethodPost, "/v1/classify", `{"statement": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty statement status = %d, want 400", rec.Code)
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	app := newTestApp(t)

	body := `{
		"original_statement": "Quiero renunciar a mi trabajo",
		"foundation": {"facts_key": "Tengo seis meses de ahorros", "clarity": "high"},
		"context": {"current_situation": "Trabajo estable pero sin crecimiento"},
		"principle": {"declared_purpose": "Buscar un trabajo con sentido"}
	}`
	rec := doJSON(t, app, http.MethodPost, "/v1/evaluate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var result domain.Evaluation
	decodeBody(t, rec, &result)
	if result.WeightedScore <= 0 || result.WeightedScore > 1 {
		t.Errorf("weighted_score = %v, want in (0, 1]", result.WeightedScore)
	}

	rec = doJSON(t, app, http.MethodPost, "/v1/evaluate", `{"foundation": {}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing statement status = %d, want 400", rec.Code)
	}
}

func TestCriterionEndpoint(t *testing.T) {
	app := newTestApp(t)

	body := `{
		"statement": "Quiero empezar un negocio",
		"real_examples": true,
		"verifiable_source": true,
		"time_risk": "low",
		"money_risk": "medium",
		"health_risk": "low",
		"reasons": "Tengo clientes interesados y un plan"
	}`
	rec := doJSON(t, app, http.MethodPost, "/v1/criterion", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Scores struct {
			Foundation float64 `json:"foundation"`
			Principle  float64 `json:"principle"`
		} `json:"scores"`
	}
	decodeBody(t, rec, &resp)
	if resp.Scores.Foundation != 0.9 {
		t.Errorf("foundation = %v, want 0.9", resp.Scores.Foundation)
	}

	rec = doJSON(t, app, http.MethodPost, "/v1/criterion",
		`{"statement": "algo", "time_risk": "extremo", "money_risk": "low", "health_risk": "low"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid risk level status = %d, want 400", rec.Code)
	}
}

func TestPatternsEndpoint(t *testing.T) {
	app := newTestApp(t)
	rec := doJSON(t, app, http.MethodGet, "/v1/patterns", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Patterns []domain.RiskPattern `json:"patterns"`
		Count    int                  `json:"count"`
	}
	decodeBody(t, rec, &resp)
	if resp.Count == 0 || resp.Count != len(resp.Patterns) {
		t.Errorf("count = %d with %d patterns", resp.Count, len(resp.Patterns))
	}
}

func TestDetectEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/v1/detect",
		`{"text": "Me uniré a las redes de mercadeo para ser mi propio jefe en redes"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Risk domain.RiskReport `json:"risk"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Risk.Signals) == 0 {
		t.Error("expected at least one risk signal for MLM language")
	}

	rec = doJSON(t, app, http.MethodPost, "/v1/detect", `{"text": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", rec.Code)
	}
}

func TestAPIKeyAuthGuardsV1Routes(t *testing.T) {
	t.Setenv("API_KEY", "secreto-local")
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/v1/patterns", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", rec.Code)
	}

	// Health stays open.
	rec = doJSON(t, app, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/patterns", nil)
	req.Header.Set("Authorization", "Bearer secreto-local")
	rec2 := httptest.NewRecorder()
	app.Router.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec2.Code)
	}
}
