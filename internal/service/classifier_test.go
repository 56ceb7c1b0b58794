package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/llm"
	"go.uber.org/zap"
)

func TestClassifier_Heuristic(t *testing.T) {
	c := NewThemeClassifier(nil, zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		statement string
		want      domain.Theme
	}{
		{"Sé que está mal pero quiero hacerlo", domain.ThemeEthicsValues},
		{"Me obligan a firmar el contrato", domain.ThemeExternalPressure},
		{"Necesito más dinero para la renta", domain.ThemeSurvivalStability},
		{"Quiero mudarme de ciudad", domain.ThemeSurvivalStability},
	}
	for _, tc := range cases {
		if got := c.Classify(ctx, tc.statement); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.statement, got, tc.want)
		}
	}
}

func TestClassifier_EthicsBeatsPressure(t *testing.T) {
	c := NewThemeClassifier(nil, zap.NewNop())

	// Both marker groups present; ethics has priority.
	got := c.Classify(context.Background(), "Me obligan a mentir a los clientes")
	if got != domain.ThemeEthicsValues {
		t.Errorf("expected ethics_values, got %s", got)
	}
}

func TestClassifier_AcceptsValidGenerativeAnswer(t *testing.T) {
	mock := &llm.MockClient{Response: "  Ethics_Values \n"}
	c := NewThemeClassifier(mock, zap.NewNop())

	got := c.Classify(context.Background(), "Quiero mudarme de ciudad")
	if got != domain.ThemeEthicsValues {
		t.Errorf("expected generative answer to win, got %s", got)
	}
	if len(mock.GenerateCalls) != 1 {
		t.Fatalf("expected 1 generative call, got %d", len(mock.GenerateCalls))
	}
}

func TestClassifier_RejectsAnswerOutsideThemeSet(t *testing.T) {
	mock := &llm.MockClient{Response: "something_else"}
	c := NewThemeClassifier(mock, zap.NewNop())

	got := c.Classify(context.Background(), "Necesito pagar la deuda")
	if got != domain.ThemeSurvivalStability {
		t.Errorf("expected heuristic fallback, got %s", got)
	}
}

func TestClassifier_FallsBackOnGenerativeError(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("upstream down")}
	c := NewThemeClassifier(mock, zap.NewNop())

	got := c.Classify(context.Background(), "Me exigen resultados ya, amenaza de despido")
	if got != domain.ThemeExternalPressure {
		t.Errorf("expected heuristic fallback, got %s", got)
	}
}
