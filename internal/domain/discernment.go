package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeSurvivalStability Theme = "survival_stability"
	ThemeEthicsValues      Theme = "ethics_values"
	ThemeExternalPressure  Theme = "external_pressure"
)

func ValidTheme(t string) bool {
	switch Theme(t) {
	case ThemeSurvivalStability, ThemeEthicsValues, ThemeExternalPressure:
		return true
	}
	return false
}

type Axis string

const (
	AxisFoundation Axis = "foundation"
	AxisContext    Axis = "context"
	AxisPrinciple  Axis = "principle"
)

func ValidAxis(a string) bool {
	switch Axis(a) {
	case AxisFoundation, AxisContext, AxisPrinciple:
		return true
	}
	return false
}

type ClarityLevel string

const (
	ClarityLow    ClarityLevel = "low"
	ClarityMedium ClarityLevel = "medium"
	ClarityHigh   ClarityLevel = "high"
)

func ValidClarityLevel(c string) bool {
	switch ClarityLevel(c) {
	case ClarityLow, ClarityMedium, ClarityHigh:
		return true
	}
	return false
}

type CompletenessLevel string

const (
	CompletenessComplete     CompletenessLevel = "complete"
	CompletenessPartial      CompletenessLevel = "partial"
	CompletenessInsufficient CompletenessLevel = "insufficient"
)

type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "short"
	HorizonMedium TimeHorizon = "medium"
	HorizonLong   TimeHorizon = "long"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func ValidRiskLevel(r string) bool {
	switch RiskLevel(r) {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

type ContradictionType string

const (
	ContradictionEthical   ContradictionType = "ethical"
	ContradictionCoherence ContradictionType = "coherence"
	ContradictionAgency    ContradictionType = "agency"
)

func ValidContradictionType(t string) bool {
	switch ContradictionType(t) {
	case ContradictionEthical, ContradictionCoherence, ContradictionAgency:
		return true
	}
	return false
}

// AnswerSource records the provenance of an axis block:
// stated by the user, inferred by the agent, or a blend of both.
type AnswerSource string

const (
	SourceUser     AnswerSource = "user"
	SourceInferred AnswerSource = "inferred"
	SourceMixed    AnswerSource = "mixed"
)

// FoundationBlock captures reality-anchored information vs assumptions (the QUÉ axis).
type FoundationBlock struct {
	FactsKey            string       `json:"facts_key"`
	ExamplesReal        bool         `json:"examples_real,omitempty"`
	AssumptionsDetected string       `json:"assumptions_detected,omitempty"`
	Clarity             ClarityLevel `json:"clarity"`
	Source              AnswerSource `json:"source"`
}

// ContextBlock captures situational constraints, alternatives, and timing (POR QUÉ).
type ContextBlock struct {
	CurrentSituation       string       `json:"current_situation"`
	Constraints            string       `json:"constraints,omitempty"`
	AlternativesIdentified string       `json:"alternatives_identified,omitempty"`
	TimeHorizon            TimeHorizon  `json:"time_horizon"`
	Source                 AnswerSource `json:"source"`
}

// PrincipleBlock captures purpose, values, and long-term alignment (PARA QUÉ).
type PrincipleBlock struct {
	DeclaredPurpose   string       `json:"declared_purpose"`
	ValuesCompromised string       `json:"values_compromised,omitempty"`
	LongTermImpact    string       `json:"long_term_impact,omitempty"`
	Alignment         ClarityLevel `json:"alignment"`
	Source            AnswerSource `json:"source"`
}

// ContradictionItem is a hard tension record. Contradictions are made
// explicit, never "solved"; the scoring engine turns them into penalties.
type ContradictionItem struct {
	Description  string            `json:"description"`
	AxesAffected []Axis            `json:"axes_affected"`
	Type         ContradictionType `json:"type"`
}

// DeclaredRisks holds user-declared (or explicitly inferred) risk levels
// across the three risk dimensions the engine aggregates.
type DeclaredRisks struct {
	Time                RiskLevel    `json:"time,omitempty"`
	Money               RiskLevel    `json:"money,omitempty"`
	HealthRelationships RiskLevel    `json:"health_relationships,omitempty"`
	Source              AnswerSource `json:"source,omitempty"`
}

// Levels returns the declared dimensions that carry a value.
func (d DeclaredRisks) Levels() []RiskLevel {
	var out []RiskLevel
	for _, l := range []RiskLevel{d.Time, d.Money, d.HealthRelationships} {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// DiscernmentObject is the structured record accumulated during one interview
// session. One instance maps to exactly one session; it is mutated only by
// that session's interview loop and finalization, then handed read-only to
// the scoring engine.
type DiscernmentObject struct {
	SessionID         uuid.UUID `json:"session_id,omitempty"`
	OriginalStatement string    `json:"original_statement"`

	DominantTheme   Theme   `json:"dominant_theme"`
	SecondaryThemes []Theme `json:"secondary_themes"`

	// The concrete decision as a single normalized sentence. Derived once at
	// finalization, never reset.
	DecisionObject string `json:"decision_object"`

	Foundation FoundationBlock `json:"foundation"`
	Context    ContextBlock    `json:"context"`
	Principle  PrincipleBlock  `json:"principle"`

	Contradictions     []ContradictionItem `json:"contradictions"`
	SoftContradictions []SoftContradiction `json:"soft_contradictions,omitempty"`
	DeclaredRisks      DeclaredRisks       `json:"declared_risks,omitempty"`

	Completeness CompletenessLevel `json:"completeness"`
	AgentNotes   string            `json:"agent_notes"`

	// Populated once, at finalization, by the risk pattern detector.
	RiskSignals         []RiskSignal `json:"risk_signals"`
	RiskDelta           float64      `json:"risk_delta"`
	MissingContextCount int          `json:"missing_context_count"`
}

// NewDiscernmentObject initializes a record for one session with
// empty-but-present axis blocks.
func NewDiscernmentObject(statement string, theme Theme) *DiscernmentObject {
	return &DiscernmentObject{
		SessionID:         uuid.New(),
		OriginalStatement: statement,
		DominantTheme:     theme,
		SecondaryThemes:   []Theme{},
		Contradictions:    []ContradictionItem{},
		Completeness:      CompletenessPartial,
		Foundation:        FoundationBlock{Clarity: ClarityMedium, Source: SourceUser},
		Context:           ContextBlock{TimeHorizon: HorizonMedium, Source: SourceUser},
		Principle:         PrincipleBlock{Alignment: ClarityMedium, Source: SourceUser},
	}
}

// AppendNote adds a line to the append-only audit trail.
func (o *DiscernmentObject) AppendNote(note string) {
	o.AgentNotes = AppendLine(o.AgentNotes, note)
}

// AddContradiction appends a hard contradiction record.
func (o *DiscernmentObject) AddContradiction(description string, axes []Axis, ctype ContradictionType) {
	o.Contradictions = append(o.Contradictions, ContradictionItem{
		Description:  description,
		AxesAffected: axes,
		Type:         ctype,
	})
}

// MergeSecondaryTheme records a displaced dominant theme, without duplicates.
func (o *DiscernmentObject) MergeSecondaryTheme(t Theme) {
	for _, existing := range o.SecondaryThemes {
		if existing == t {
			return
		}
	}
	o.SecondaryThemes = append(o.SecondaryThemes, t)
}

// HasFoundation reports whether the foundation axis has primary text.
func (o *DiscernmentObject) HasFoundation() bool { return o.Foundation.FactsKey != "" }

// HasContext reports whether the context axis has primary text.
func (o *DiscernmentObject) HasContext() bool { return o.Context.CurrentSituation != "" }

// HasPrinciple reports whether the principle axis has primary text.
func (o *DiscernmentObject) HasPrinciple() bool { return o.Principle.DeclaredPurpose != "" }

// RecomputeCompleteness derives the completeness level from current axis
// contents: complete iff all three axes have primary text, partial iff at
// least one does.
func (o *DiscernmentObject) RecomputeCompleteness() {
	switch {
	case o.HasFoundation() && o.HasContext() && o.HasPrinciple():
		o.Completeness = CompletenessComplete
	case o.HasFoundation() || o.HasContext() || o.HasPrinciple():
		o.Completeness = CompletenessPartial
	default:
		o.Completeness = CompletenessInsufficient
	}
}

// EnsureEvaluationDefaults fills absent enum fields with the values a fresh
// session starts with, so externally supplied objects score the same as
// interview output. Shared by every entry point that accepts a pre-filled
// object.
func (o *DiscernmentObject) EnsureEvaluationDefaults() {
	if o.Foundation.Clarity == "" {
		o.Foundation.Clarity = ClarityMedium
	}
	if o.Principle.Alignment == "" {
		o.Principle.Alignment = ClarityMedium
	}
	if o.Context.TimeHorizon == "" {
		o.Context.TimeHorizon = HorizonMedium
	}
	if o.Completeness == "" {
		o.RecomputeCompleteness()
	}
}

// AllText joins the statement and the three axis primary texts, for the
// detectors and reorientation signal scan.
func (o *DiscernmentObject) AllText() string {
	parts := []string{
		o.OriginalStatement,
		o.Foundation.FactsKey,
		o.Context.CurrentSituation,
		o.Principle.DeclaredPurpose,
	}
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

// AppendLine newline-joins a trimmed line onto base, skipping empty lines.
// Axis text fields are append-only; this is the single merge policy.
func AppendLine(base, line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return base
	}
	if base == "" {
		return line
	}
	return base + "\n" + line
}

// InterviewState is the ephemeral runtime state of one interview loop,
// discarded after the session finishes.
type InterviewState struct {
	Turns      int
	Asked      []string
	Reoriented bool
	StopReason string
}

// WasAsked reports whether a question id has already been used this session.
func (s *InterviewState) WasAsked(qid string) bool {
	for _, id := range s.Asked {
		if id == qid {
			return true
		}
	}
	return false
}
