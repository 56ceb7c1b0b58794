package service

import (
	"context"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"go.uber.org/zap"
)

const maxEvidenceHits = 5

// severityDeltas is the per-activation contribution to the aggregate risk
// delta. The sum is capped at 1.0.
var severityDeltas = map[domain.RiskLevel]float64{
	domain.RiskLow:    0.10,
	domain.RiskMedium: 0.20,
	domain.RiskHigh:   0.35,
}

// RiskPatternDetector matches session text against the curated pattern
// library. Matching is token-presence based, not substring based, so word
// order and punctuation inside a trigger phrase do not matter. An optional
// semantic matcher widens recall for paraphrases; it never replaces the
// deterministic tier.
type RiskPatternDetector struct {
	patterns []domain.RiskPattern
	matcher  *SemanticMatcher
	logger   *zap.Logger
}

func NewRiskPatternDetector(patterns []domain.RiskPattern, matcher *SemanticMatcher, logger *zap.Logger) *RiskPatternDetector {
	return &RiskPatternDetector{patterns: patterns, matcher: matcher, logger: logger}
}

// Detect scans all accumulated session text.
func (d *RiskPatternDetector) Detect(ctx context.Context, obj *domain.DiscernmentObject) (domain.RiskReport, error) {
	return d.DetectText(ctx, obj.AllText())
}

// DetectText reports every activated pattern over free text, with the
// triggering phrases as evidence. Same input, same report.
func (d *RiskPatternDetector) DetectText(ctx context.Context, text string) (domain.RiskReport, error) {
	tokens := tokenSet(text)
	report := domain.RiskReport{Signals: []domain.RiskSignal{}}

	for _, p := range d.patterns {
		var hits []string
		for _, phrase := range p.TriggerPhrases {
			if len(hits) >= maxEvidenceHits {
				break
			}
			if allTokensPresent(tokens, SignificantTokens(phrase)) {
				hits = append(hits, phrase)
			}
		}

		if len(hits) == 0 && d.matcher != nil {
			phrase, ok, err := d.matcher.Match(ctx, text, p.TriggerPhrases)
			if err != nil {
				d.logger.Debug("semantic tier skipped", zap.String("pattern_id", p.ID), zap.Error(err))
			} else if ok {
				hits = append(hits, phrase)
			}
		}

		if len(hits) == 0 {
			continue
		}

		report.Signals = append(report.Signals, domain.RiskSignal{
			PatternID:           p.ID,
			Domain:              p.Domain,
			Title:               p.Title,
			Severity:            p.Severity,
			ObservedRisks:       p.ObservedRisks,
			MissingCriticalData: p.MissingCriticalData,
			FollowupQuestions:   p.FollowupQuestions,
			EvidenceHits:        hits,
		})
		report.RiskDelta += severityDeltas[p.Severity]
		report.MissingContextCount += len(p.MissingCriticalData)
	}

	if report.RiskDelta > 1.0 {
		report.RiskDelta = 1.0
	}
	return report, nil
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokenize(text) {
		set[t] = true
	}
	return set
}

func allTokensPresent(set map[string]bool, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		if !set[t] {
			return false
		}
	}
	return true
}
