package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"github.com/rosatisoft/axioma-criterion-engine/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func objWithText(statement, factsKey string) *domain.DiscernmentObject {
	obj := domain.NewDiscernmentObject(statement, domain.ThemeSurvivalStability)
	obj.Foundation.FactsKey = factsKey
	return obj
}

func TestSoftDetector_UrgencyMismatch(t *testing.T) {
	d := NewSoftContradictionDetector(nil, zap.NewNop())

	obj := objWithText(
		"Debo tener una novia mucho más joven",
		"La verdad es sin urgencia, estaría mejor acompañado",
	)
	findings, err := d.Detect(context.Background(), obj)
	require.NoError(t, err)
	require.NotEmpty(t, findings)

	var hit *domain.SoftContradiction
	for i := range findings {
		if findings[i].Type == domain.SoftUrgencyMismatch {
			hit = &findings[i]
			break
		}
	}
	require.NotNil(t, hit, "expected an urgency_mismatch finding, got %v", findings)
	assert.Equal(t, domain.SoftSeverityMedium, hit.Severity)
	assert.Equal(t, domain.ActionReframe, hit.SuggestedAction)
	assert.NotEmpty(t, hit.Evidence)
}

func TestSoftDetector_PreservationMismatchIsHigh(t *testing.T) {
	d := NewSoftContradictionDetector(nil, zap.NewNop())

	obj := objWithText(
		"Quiero salvar la relacion aunque sufro todos los dias",
		"",
	)
	findings, err := d.Detect(context.Background(), obj)
	require.NoError(t, err)

	found := false
	for _, f := range findings {
		if f.Type == domain.SoftPreservationMismatch {
			found = true
			assert.Equal(t, domain.SoftSeverityHigh, f.Severity)
		}
	}
	assert.True(t, found, "expected preservation_mismatch in %v", findings)
}

func TestSoftDetector_NoTensionsOnPlainText(t *testing.T) {
	d := NewSoftContradictionDetector(nil, zap.NewNop())

	findings, err := d.Detect(context.Background(), objWithText("Quiero aprender otro idioma", ""))
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestSoftDetector_GenerativeFindingsValidatedAndMerged(t *testing.T) {
	mock := &llm.MockClient{Response: "```json\n[" +
		`{"type":"value_conflict","severity":"high","affected_axes":["principle"],"note":"Valores en tension."},` +
		`{"type":"made_up_type","severity":"high","affected_axes":["principle"],"note":"Invalido."},` +
		`{"type":"goal_vs_costs","severity":"nope","affected_axes":["principle"],"note":"Severidad invalida."}` +
		"]\n```"}
	d := NewSoftContradictionDetector(mock, zap.NewNop())

	findings, err := d.Detect(context.Background(), objWithText("Quiero aprender otro idioma", ""))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SoftValueConflict, findings[0].Type)
	// Default action fills in when the model omits one.
	assert.Equal(t, domain.ActionAskFollowup, findings[0].SuggestedAction)
}

func TestSoftDetector_GenerativeFailureFallsBackToHeuristics(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("timeout")}
	d := NewSoftContradictionDetector(mock, zap.NewNop())

	obj := objWithText(
		"Debo tener una novia mucho más joven",
		"Sin urgencia por ahora",
	)
	findings, err := d.Detect(context.Background(), obj)
	require.NoError(t, err)
	assert.NotEmpty(t, findings, "deterministic tier must still report")
}

func TestSoftDetector_DeduplicatesByNote(t *testing.T) {
	// The generative tier repeats a deterministic finding verbatim.
	note := "Lenguaje de obligacion ('debo') junto a baja urgencia ('sin urgencia')."
	mock := &llm.MockClient{Response: `[{"type":"urgency_mismatch","severity":"medium","affected_axes":["foundation"],"note":"` + note + `"}]`}
	d := NewSoftContradictionDetector(mock, zap.NewNop())

	obj := objWithText("Debo hacerlo", "sin urgencia")
	findings, err := d.Detect(context.Background(), obj)
	require.NoError(t, err)

	count := 0
	for _, f := range findings {
		if f.Note == note {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate notes must collapse: %v", findings)
}
