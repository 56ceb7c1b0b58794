package service

import "github.com/rosatisoft/axioma-criterion-engine/internal/domain"

// Derived-level thresholds on cumulative axis text. Byte length is close
// enough for Spanish answers; exactness does not matter at these cutoffs.
const (
	clarityMediumLen = 20
	clarityHighLen   = 60
)

var (
	shortHorizonMarkers = []string{
		"temporal", "por ahora", "corto plazo", "solo un tiempo", "es temporal",
	}
	longHorizonMarkers = []string{
		"largo plazo", "permanente", "para siempre", "a largo plazo",
	}
	unknownPurposeMarkers = []string{
		"no lo se", "no se", "ni idea",
	}
)

func inferClarity(text string) domain.ClarityLevel {
	t := Normalize(text)
	switch {
	case len(t) >= clarityHighLen:
		return domain.ClarityHigh
	case len(t) >= clarityMediumLen:
		return domain.ClarityMedium
	default:
		return domain.ClarityLow
	}
}

func inferTimeHorizon(text string) domain.TimeHorizon {
	t := Normalize(text)
	if _, ok := containsAny(t, shortHorizonMarkers); ok {
		return domain.HorizonShort
	}
	if _, ok := containsAny(t, longHorizonMarkers); ok {
		return domain.HorizonLong
	}
	return domain.HorizonMedium
}

// inferAlignment grades the declared purpose: absent or explicitly unknown
// reads low, otherwise the same length bands as clarity apply.
func inferAlignment(purpose string) domain.ClarityLevel {
	t := Normalize(purpose)
	if t == "" {
		return domain.ClarityLow
	}
	if _, ok := containsAny(t, unknownPurposeMarkers); ok {
		return domain.ClarityLow
	}
	switch {
	case len(t) >= clarityHighLen:
		return domain.ClarityHigh
	case len(t) >= clarityMediumLen:
		return domain.ClarityMedium
	default:
		return domain.ClarityLow
	}
}
