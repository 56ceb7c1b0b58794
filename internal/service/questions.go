package service

import "github.com/rosatisoft/axioma-criterion-engine/internal/domain"

// Question is one bank entry. IDs are stable references for logs and the
// asked-question dedup guard.
type Question struct {
	ID     string
	Axis   domain.Axis
	Prompt string
}

// questionBank holds the static per-theme, per-axis ordered question lists.
// Phrasing is in Spanish, three questions per axis per theme.
var questionBank = map[domain.Theme][]Question{
	domain.ThemeSurvivalStability: {
		{"SS_F_1", domain.AxisFoundation, "¿Qué hecho concreto hace necesaria esta decisión ahora?"},
		{"SS_F_2", domain.AxisFoundation, "¿Qué ocurriría realmente si no tomaras esta decisión?"},
		{"SS_F_3", domain.AxisFoundation, "¿Esto es una necesidad comprobable o una percepción de urgencia?"},
		{"SS_C_1", domain.AxisContext, "¿Qué circunstancias actuales te colocan en esta situación?"},
		{"SS_C_2", domain.AxisContext, "¿Qué alternativas reales existen, aunque no sean ideales?"},
		{"SS_C_3", domain.AxisContext, "¿Esta decisión es temporal o te ata a largo plazo?"},
		{"SS_P_1", domain.AxisPrinciple, "¿Qué estás preservando al tomar esta decisión?"},
		{"SS_P_2", domain.AxisPrinciple, "¿Qué propósito explícito estás declarando con esta decisión?"},
		{"SS_P_3", domain.AxisPrinciple, "¿Qué valor se dañaría si haces lo contrario?"},
	},
	domain.ThemeEthicsValues: {
		{"EV_F_1", domain.AxisFoundation, "¿Qué hechos verificables sostienen tu afirmación (no interpretaciones)?"},
		{"EV_F_2", domain.AxisFoundation, "¿Qué evidencia sólida podría contradecir tu postura?"},
		{"EV_F_3", domain.AxisFoundation, "¿Qué tan claro es para ti qué está 'bien' o 'mal' aquí, y por qué?"},
		{"EV_C_1", domain.AxisContext, "¿Quiénes se verán afectados y de qué forma concreta?"},
		{"EV_C_2", domain.AxisContext, "¿Qué incentivos o presiones del entorno están influyendo?"},
		{"EV_C_3", domain.AxisContext, "¿Qué consecuencias a corto y largo plazo son plausibles?"},
		{"EV_P_1", domain.AxisPrinciple, "¿Qué principio ético estás tratando de honrar (en una frase)?"},
		{"EV_P_2", domain.AxisPrinciple, "¿Qué línea no cruzarías aunque te convenga?"},
		{"EV_P_3", domain.AxisPrinciple, "¿Qué opción preserva mejor dignidad/verdad/justicia según tu criterio?"},
	},
	domain.ThemeExternalPressure: {
		{"EP_F_1", domain.AxisFoundation, "¿Qué presión externa específica está ocurriendo (quién/qué)?"},
		{"EP_F_2", domain.AxisFoundation, "¿Qué consecuencias reales existen si no cedes a la presión?"},
		{"EP_F_3", domain.AxisFoundation, "¿Qué parte es un hecho y qué parte es interpretación o miedo?"},
		{"EP_C_1", domain.AxisContext, "¿Qué opciones reales tienes si pones límites?"},
		{"EP_C_2", domain.AxisContext, "¿Qué apoyos o recursos existen en tu entorno?"},
		{"EP_C_3", domain.AxisContext, "¿Qué tan temporal o permanente es esta presión?"},
		{"EP_P_1", domain.AxisPrinciple, "¿Qué estás intentando evitar al decidir así?"},
		{"EP_P_2", domain.AxisPrinciple, "¿Esta decisión protege algo valioso o solo evita conflicto?"},
		{"EP_P_3", domain.AxisPrinciple, "¿Qué precedente establece esta decisión para ti?"},
	},
}

// QuestionsForTheme returns the bank for a theme, defaulting to the
// survival/stability bank for safety.
func QuestionsForTheme(theme domain.Theme) []Question {
	if qs, ok := questionBank[theme]; ok {
		return qs
	}
	return questionBank[domain.ThemeSurvivalStability]
}
