package service

import (
	"context"
	"fmt"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"go.uber.org/zap"
)

// Marker sets for the deterministic fallback classifier, tested in priority
// order. Ethical tension is the most diagnostic signal and is checked first;
// survival/stability is the default base layer. Markers are matched against
// normalized text, so they carry no accents.
var (
	ethicsMarkers = []string{
		"se que esta mal", "no es correcto", "ilegal", "fraude",
		"mentir", "corrup", "trampa", "etico", "engana",
	}
	pressureMarkers = []string{
		"me obligan", "me piden", "presion", "ultimatum",
		"amenaz", "si no", "exigen", "esperan que",
	}
	survivalMarkers = []string{
		"dinero", "trabajo", "renta", "deuda", "pagar",
		"urgente", "necesito", "ingresos", "estabilidad",
	}
)

// ThemeClassifier maps free text to a dominant theme. If a generative client
// is configured it is consulted first; its answer is accepted only when it is
// an exact member of the closed theme set. The marker fallback always works.
type ThemeClassifier struct {
	generative domain.GenerativeClient
	logger     *zap.Logger
}

func NewThemeClassifier(generative domain.GenerativeClient, logger *zap.Logger) *ThemeClassifier {
	return &ThemeClassifier{generative: generative, logger: logger}
}

func (c *ThemeClassifier) Classify(ctx context.Context, text string) domain.Theme {
	if c.generative != nil {
		out, err := c.generative.Generate(ctx, fmt.Sprintf(classifyPrompt, text))
		if err == nil {
			candidate := Normalize(out)
			if domain.ValidTheme(candidate) {
				return domain.Theme(candidate)
			}
			c.logger.Debug("classifier returned value outside theme set, using fallback",
				zap.String("raw", out))
		} else {
			c.logger.Debug("generative classification failed, using fallback", zap.Error(err))
		}
	}
	return c.classifyHeuristic(text)
}

func (c *ThemeClassifier) classifyHeuristic(text string) domain.Theme {
	s := Normalize(text)

	if _, ok := containsAny(s, ethicsMarkers); ok {
		return domain.ThemeEthicsValues
	}
	if _, ok := containsAny(s, pressureMarkers); ok {
		return domain.ThemeExternalPressure
	}
	if _, ok := containsAny(s, survivalMarkers); ok {
		return domain.ThemeSurvivalStability
	}

	return domain.ThemeSurvivalStability
}
