package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
)

// ScoringConfig gathers every weight, base, boost, and penalty the engine
// uses. It is passed at construction and never mutated, so two engines with
// the same config always agree.
type ScoringConfig struct {
	FoundationWeight float64
	ContextWeight    float64
	PrincipleWeight  float64

	ClarityBase map[domain.ClarityLevel]float64

	PresenceBoost  float64
	CompromisePena float64

	ContradictionPenalty map[domain.ContradictionType]float64

	RiskImpact map[domain.RiskLevel]float64

	ConfidenceBase          map[domain.CompletenessLevel]float64
	ContradictionConfidence float64
	MaxConfidenceReduction  float64
	ConfidenceFloor         float64
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		FoundationWeight: 0.34,
		ContextWeight:    0.33,
		PrincipleWeight:  0.33,
		ClarityBase: map[domain.ClarityLevel]float64{
			domain.ClarityLow:    0.3,
			domain.ClarityMedium: 0.6,
			domain.ClarityHigh:   0.9,
		},
		PresenceBoost:  0.05,
		CompromisePena: 0.05,
		ContradictionPenalty: map[domain.ContradictionType]float64{
			domain.ContradictionEthical:   0.20,
			domain.ContradictionCoherence: 0.15,
			domain.ContradictionAgency:    0.15,
		},
		RiskImpact: map[domain.RiskLevel]float64{
			domain.RiskLow:    0.10,
			domain.RiskMedium: 0.20,
			domain.RiskHigh:   0.35,
		},
		ConfidenceBase: map[domain.CompletenessLevel]float64{
			domain.CompletenessComplete:     1.0,
			domain.CompletenessPartial:      0.75,
			domain.CompletenessInsufficient: 0.5,
		},
		ContradictionConfidence: 0.1,
		MaxConfidenceReduction:  0.3,
		ConfidenceFloor:         0.3,
	}
}

// ScoringEngine turns a finalized discernment object into a transparent
// evaluation. Pure: no I/O, no clock, no state; same object in, same
// evaluation out.
type ScoringEngine struct {
	cfg ScoringConfig
}

func NewScoringEngine(cfg ScoringConfig) *ScoringEngine {
	return &ScoringEngine{cfg: cfg}
}

func (e *ScoringEngine) Evaluate(obj *domain.DiscernmentObject) domain.Evaluation {
	scores := domain.AxisScores{
		Foundation: e.foundationScore(obj),
		Context:    e.contextScore(obj),
		Principle:  e.principleScore(obj),
	}

	weighted := e.cfg.FoundationWeight*scores.Foundation +
		e.cfg.ContextWeight*scores.Context +
		e.cfg.PrincipleWeight*scores.Principle

	var penalties []string
	for _, c := range obj.Contradictions {
		p, ok := e.cfg.ContradictionPenalty[c.Type]
		if !ok {
			continue
		}
		weighted -= p
		penalties = append(penalties, fmt.Sprintf("%s (-%.2f)", c.Type, p))
	}
	if weighted < 0 {
		weighted = 0
	}

	return domain.Evaluation{
		Scores: domain.AxisScores{
			Foundation: round3(scores.Foundation),
			Context:    round3(scores.Context),
			Principle:  round3(scores.Principle),
		},
		WeightedScore: round3(weighted),
		RiskIndex:     round3(e.riskIndex(obj)),
		Confidence:    round3(e.confidence(obj)),
		Penalties:     penalties,
		Notes:         e.notes(obj, penalties),
	}
}

func (e *ScoringEngine) foundationScore(obj *domain.DiscernmentObject) float64 {
	s := e.cfg.ClarityBase[obj.Foundation.Clarity]
	if strings.TrimSpace(obj.Foundation.FactsKey) != "" {
		s += e.cfg.PresenceBoost
	}
	if obj.Foundation.ExamplesReal {
		s += e.cfg.PresenceBoost
	}
	return clamp01(s)
}

// Context has no clarity level of its own; it scores from the medium base
// plus presence boosts.
func (e *ScoringEngine) contextScore(obj *domain.DiscernmentObject) float64 {
	s := e.cfg.ClarityBase[domain.ClarityMedium]
	if strings.TrimSpace(obj.Context.CurrentSituation) != "" {
		s += e.cfg.PresenceBoost
	}
	if strings.TrimSpace(obj.Context.AlternativesIdentified) != "" {
		s += e.cfg.PresenceBoost
	}
	return clamp01(s)
}

func (e *ScoringEngine) principleScore(obj *domain.DiscernmentObject) float64 {
	s := e.cfg.ClarityBase[obj.Principle.Alignment]
	if strings.TrimSpace(obj.Principle.DeclaredPurpose) != "" {
		s += e.cfg.PresenceBoost
	}
	if strings.TrimSpace(obj.Principle.ValuesCompromised) != "" {
		s -= e.cfg.CompromisePena
	}
	return clamp01(s)
}

func (e *ScoringEngine) riskIndex(obj *domain.DiscernmentObject) float64 {
	idx := 0.0
	for _, lvl := range obj.DeclaredRisks.Levels() {
		idx += e.cfg.RiskImpact[lvl]
	}
	if idx > 1.0 {
		idx = 1.0
	}
	return idx
}

func (e *ScoringEngine) confidence(obj *domain.DiscernmentObject) float64 {
	base, ok := e.cfg.ConfidenceBase[obj.Completeness]
	if !ok {
		base = e.cfg.ConfidenceBase[domain.CompletenessInsufficient]
	}
	reduction := float64(len(obj.Contradictions)) * e.cfg.ContradictionConfidence
	if reduction > e.cfg.MaxConfidenceReduction {
		reduction = e.cfg.MaxConfidenceReduction
	}
	c := base - reduction
	if c < e.cfg.ConfidenceFloor {
		c = e.cfg.ConfidenceFloor
	}
	return c
}

func (e *ScoringEngine) notes(obj *domain.DiscernmentObject, penalties []string) string {
	var b strings.Builder
	if len(penalties) > 0 {
		b.WriteString("Penalties applied: " + strings.Join(penalties, ", ") + ". ")
	}
	if obj.Completeness != domain.CompletenessComplete {
		b.WriteString("Completeness: " + string(obj.Completeness) + ". ")
	}
	if obj.AgentNotes != "" {
		b.WriteString(strings.ReplaceAll(obj.AgentNotes, "\n", " | "))
	}
	return strings.TrimSpace(b.String())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
