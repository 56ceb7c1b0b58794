package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
)

// The criterion calculator is the simple non-interview path: the caller
// supplies pre-filled answers and gets the fixed triaxial formula back. No
// state machine, no detectors, no external calls.

var ErrInvalidRiskLevel = errors.New("risk level must be low, medium, or high")

// riskValues maps a declared risk level to its prudence value: low risk
// scores high.
var riskValues = map[domain.RiskLevel]float64{
	domain.RiskLow:    0.8,
	domain.RiskMedium: 0.5,
	domain.RiskHigh:   0.2,
}

// CriterionInput is the minimal pre-filled answer set.
type CriterionInput struct {
	Statement        string           `json:"statement"`
	RealExamples     bool             `json:"real_examples"`
	VerifiableSource bool             `json:"verifiable_source"`
	TimeRisk         domain.RiskLevel `json:"time_risk"`
	MoneyRisk        domain.RiskLevel `json:"money_risk"`
	HealthRisk       domain.RiskLevel `json:"health_risk"`
	Reasons          string           `json:"reasons"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

// CriterionScores holds the simplified triaxial scores, rounded to 3
// decimal places.
type CriterionScores struct {
	Foundation float64 `json:"foundation"`
	Context    float64 `json:"context"`
	Principle  float64 `json:"principle"`
	GlobalRisk float64 `json:"global_risk"`
}

type CriterionResult struct {
	Input  CriterionInput  `json:"input"`
	Scores CriterionScores `json:"scores"`
	Notes  string          `json:"notes"`
}

// CriterionCalculator computes the fixed formula. Stateless and pure.
type CriterionCalculator struct{}

func NewCriterionCalculator() *CriterionCalculator { return &CriterionCalculator{} }

func (c *CriterionCalculator) Evaluate(in CriterionInput) (CriterionResult, error) {
	in.Statement = strings.TrimSpace(in.Statement)
	in.Reasons = strings.TrimSpace(in.Reasons)
	if in.Statement == "" {
		return CriterionResult{}, ErrStatementEmpty
	}
	for _, lvl := range []domain.RiskLevel{in.TimeRisk, in.MoneyRisk, in.HealthRisk} {
		if !domain.ValidRiskLevel(string(lvl)) {
			return CriterionResult{}, fmt.Errorf("%w: %q", ErrInvalidRiskLevel, lvl)
		}
	}

	foundation := 0.4
	if in.RealExamples {
		foundation += 0.25
	}
	if in.VerifiableSource {
		foundation += 0.25
	}
	foundation = clamp01(foundation)

	globalRisk := (riskValues[in.TimeRisk] + riskValues[in.MoneyRisk] + riskValues[in.HealthRisk]) / 3.0

	// Context bands on the fundamento/risk combination, not a free scale.
	var ctx float64
	switch {
	case foundation >= 0.7 && globalRisk < 0.5:
		ctx = 0.8
	case foundation < 0.4 && globalRisk < 0.5:
		ctx = 0.5
	default:
		ctx = 0.6
	}

	principle := foundation*0.5 + globalRisk*0.3 + ctx*0.2

	return CriterionResult{
		Input: in,
		Scores: CriterionScores{
			Foundation: round3(foundation),
			Context:    round3(ctx),
			Principle:  round3(principle),
			GlobalRisk: round3(globalRisk),
		},
		Notes: "Evaluacion basica generada por el motor de criterio.",
	}, nil
}

// NormalizeRiskLevel maps interactive answers ("b", "bajo", "alto", also the
// English level names) to a risk level. Unrecognized input comes back as-is,
// lowercased, so validation can report it.
func NormalizeRiskLevel(value string) domain.RiskLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "b", "ba", "bajo", "low":
		return domain.RiskLow
	case "m", "me", "medio", "medium":
		return domain.RiskMedium
	case "a", "al", "alto", "high":
		return domain.RiskHigh
	default:
		return domain.RiskLevel(strings.ToLower(strings.TrimSpace(value)))
	}
}

// Decision is the guided session's verdict.
type Decision string

const (
	DecisionNo             Decision = "no"
	DecisionPostpone       Decision = "postpone"
	DecisionProceedGradual Decision = "proceed_gradual"
	DecisionProceed        Decision = "proceed"
)

// SessionResult pairs the verdict with a short human-readable reason.
type SessionResult struct {
	Decision Decision `json:"decision"`
	Note     string   `json:"note"`
}

// Prompter functions are injected so the session runs the same under a
// terminal, a test, or any other driver.
type (
	YesNoPrompter func(prompt string) bool
	LevelPrompter func(prompt string) domain.RiskLevel
	TextPrompter  func(prompt string) string
)

// RunCriterionSession walks the guided check: clarity, verifiability,
// declared risks, reasons, value alignment, inner peace. Early exits carry
// the verdict; the happy path ends in proceed or proceed-gradual depending
// on whether any risk is high.
func RunCriterionSession(askYesNo YesNoPrompter, askLevel LevelPrompter, askText TextPrompter) SessionResult {
	askText("Escribe la afirmacion o decision que quieres evaluar:")

	if !askYesNo("¿La afirmacion te resulta clara tal como la escribiste?") {
		askText("Reformula la afirmacion para que sea mas clara:")
		if !askYesNo("¿Ahora si esta clara para ti?") {
			return SessionResult{
				Decision: DecisionNo,
				Note:     "La afirmacion sigue sin ser clara. Reformulala mejor antes de decidir.",
			}
		}
	}

	realExample := askYesNo("¿Puedes dar al menos un ejemplo real que respalde esta afirmacion?")
	verifiableSource := askYesNo("¿Podrias verificarla en alguna fuente confiable (estudio, experto, dato)?")
	if !realExample && !verifiableSource {
		return SessionResult{
			Decision: DecisionPostpone,
			Note: "Trata esta afirmacion como hipotesis, no como verdad operativa. " +
				"No hay verificabilidad suficiente por ahora.",
		}
	}

	timeRisk := askLevel("Si actuas como si esto fuera verdad, el riesgo/costo en TIEMPO es")
	moneyRisk := askLevel("El riesgo/costo en DINERO es")
	healthRisk := askLevel("El riesgo/costo en SALUD/PAZ/RELACIONES es")
	caution := timeRisk == domain.RiskHigh || moneyRisk == domain.RiskHigh || healthRisk == domain.RiskHigh

	reasons := strings.TrimSpace(askText("Escribe brevemente por que crees que esta afirmacion es verdadera:"))
	if len(reasons) < 5 {
		return SessionResult{
			Decision: DecisionPostpone,
			Note: "Fundamento debil: no expresaste razones claras. " +
				"No tomes decisiones fuertes basadas solo en esto.",
		}
	}

	if askYesNo("¿Alguna de tus razones contradice hechos solidos que ya conoces?") {
		return SessionResult{
			Decision: DecisionNo,
			Note: "Hay contradicciones entre tus razones y hechos que conoces. " +
				"La afirmacion requiere revision o correccion.",
		}
	}

	askText("¿Para que quieres aceptar esta afirmacion o tomar esta decision?")
	if !askYesNo("¿Este proposito se alinea con tus valores y con la persona que quieres ser?") {
		return SessionResult{
			Decision: DecisionNo,
			Note: "El proposito no se alinea con tus valores o identidad. " +
				"No procede por ahora o requiere cambiar el proposito.",
		}
	}

	if !askYesNo("Viendo los riesgos y el proposito, ¿sientes paz interior con esta decision?") {
		return SessionResult{
			Decision: DecisionPostpone,
			Note: "No hay paz con esta decision; conviene esperar, buscar consejo " +
				"o conseguir mas informacion.",
		}
	}

	if caution {
		return SessionResult{
			Decision: DecisionProceedGradual,
			Note: "La afirmacion es razonable, pero hay riesgos altos. " +
				"Sigue adelante de forma gradual, con limites claros y monitoreo.",
		}
	}
	return SessionResult{
		Decision: DecisionProceed,
		Note: "La afirmacion es razonable, verificada y alineada contigo. " +
			"Puedes seguir adelante con tranquilidad.",
	}
}
