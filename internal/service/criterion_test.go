package service

import (
	"errors"
	"testing"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
)

func TestCriterionCalculator_Formula(t *testing.T) {
	calc := NewCriterionCalculator()

	result, err := calc.Evaluate(CriterionInput{
		Statement:        "Debo caminar 30 minutos diarios.",
		RealExamples:     true,
		VerifiableSource: true,
		TimeRisk:         domain.RiskLow,
		MoneyRisk:        domain.RiskLow,
		HealthRisk:       domain.RiskLow,
		Reasons:          "Recomendacion medica.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Scores.Foundation != 0.9 {
		t.Errorf("foundation = %f, want 0.9", result.Scores.Foundation)
	}
	if result.Scores.GlobalRisk != 0.8 {
		t.Errorf("global risk = %f, want 0.8", result.Scores.GlobalRisk)
	}
	// High foundation but high prudence value means the low-risk band does
	// not apply; context sits at the middle band.
	if result.Scores.Context != 0.6 {
		t.Errorf("context = %f, want 0.6", result.Scores.Context)
	}
	want := round3(0.9*0.5 + 0.8*0.3 + 0.6*0.2)
	if result.Scores.Principle != want {
		t.Errorf("principle = %f, want %f", result.Scores.Principle, want)
	}
}

func TestCriterionCalculator_RejectsEmptyStatement(t *testing.T) {
	_, err := NewCriterionCalculator().Evaluate(CriterionInput{
		Statement: "  ",
		TimeRisk:  domain.RiskLow, MoneyRisk: domain.RiskLow, HealthRisk: domain.RiskLow,
	})
	if !errors.Is(err, ErrStatementEmpty) {
		t.Fatalf("expected ErrStatementEmpty, got %v", err)
	}
}

func TestCriterionCalculator_RejectsInvalidRiskLevel(t *testing.T) {
	_, err := NewCriterionCalculator().Evaluate(CriterionInput{
		Statement: "Algo",
		TimeRisk:  "enorme", MoneyRisk: domain.RiskLow, HealthRisk: domain.RiskLow,
	})
	if !errors.Is(err, ErrInvalidRiskLevel) {
		t.Fatalf("expected ErrInvalidRiskLevel, got %v", err)
	}
}

func TestNormalizeRiskLevel(t *testing.T) {
	cases := map[string]domain.RiskLevel{
		"b":      domain.RiskLow,
		"BAJO":   domain.RiskLow,
		"medio":  domain.RiskMedium,
		"medium": domain.RiskMedium,
		"Alto":   domain.RiskHigh,
		"enorme": domain.RiskLevel("enorme"),
	}
	for in, want := range cases {
		if got := NormalizeRiskLevel(in); got != want {
			t.Errorf("NormalizeRiskLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

// scriptedSession feeds pre-planned answers to the guided session.
type scriptedSession struct {
	yesNo  []bool
	levels []domain.RiskLevel
	texts  []string
}

func (s *scriptedSession) askYesNo(string) bool {
	v := s.yesNo[0]
	s.yesNo = s.yesNo[1:]
	return v
}

func (s *scriptedSession) askLevel(string) domain.RiskLevel {
	v := s.levels[0]
	s.levels = s.levels[1:]
	return v
}

func (s *scriptedSession) askText(string) string {
	v := s.texts[0]
	s.texts = s.texts[1:]
	return v
}

func TestCriterionSession_Proceed(t *testing.T) {
	s := &scriptedSession{
		yesNo: []bool{
			true,  // statement is clear
			true,  // real example
			false, // verifiable source
			false, // contradicts known facts
			true,  // aligned with values
			true,  // inner peace
		},
		levels: []domain.RiskLevel{domain.RiskLow, domain.RiskMedium, domain.RiskLow},
		texts: []string{
			"Debo caminar 30 minutos diarios.",
			"Porque es una recomendacion medica y he visto mejoras en otros.",
			"Para mejorar mi salud y tener mas energia.",
		},
	}

	result := RunCriterionSession(s.askYesNo, s.askLevel, s.askText)
	if result.Decision != DecisionProceed {
		t.Fatalf("expected proceed, got %s (%s)", result.Decision, result.Note)
	}
}

func TestCriterionSession_ProceedGradualOnHighRisk(t *testing.T) {
	s := &scriptedSession{
		yesNo:  []bool{true, true, true, false, true, true},
		levels: []domain.RiskLevel{domain.RiskHigh, domain.RiskLow, domain.RiskLow},
		texts: []string{
			"Voy a montar un negocio propio.",
			"Tengo experiencia en el sector y clientes interesados.",
			"Para construir independencia a mediano plazo.",
		},
	}

	result := RunCriterionSession(s.askYesNo, s.askLevel, s.askText)
	if result.Decision != DecisionProceedGradual {
		t.Fatalf("expected proceed_gradual, got %s (%s)", result.Decision, result.Note)
	}
}

func TestCriterionSession_PostponeOnWeakReasons(t *testing.T) {
	s := &scriptedSession{
		yesNo:  []bool{true, true, false},
		levels: []domain.RiskLevel{domain.RiskLow, domain.RiskLow, domain.RiskLow},
		texts: []string{
			"Debo invertir todos mis ahorros en esta oportunidad.",
			"x",
		},
	}

	result := RunCriterionSession(s.askYesNo, s.askLevel, s.askText)
	if result.Decision != DecisionPostpone {
		t.Fatalf("expected postpone, got %s (%s)", result.Decision, result.Note)
	}
}

func TestCriterionSession_NoWhenUnverifiableAndUnclearTwice(t *testing.T) {
	s := &scriptedSession{
		yesNo: []bool{false, false},
		texts: []string{
			"Algo confuso.",
			"Sigue confuso.",
		},
	}

	result := RunCriterionSession(s.askYesNo, s.askLevel, s.askText)
	if result.Decision != DecisionNo {
		t.Fatalf("expected no, got %s (%s)", result.Decision, result.Note)
	}
}
