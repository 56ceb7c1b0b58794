package domain

// SoftContradictionType classifies tensions inside the user's formulation
// that do not strictly invalidate the statement but reduce coherence or
// certainty. These are structural, motivational, temporal, or semantic
// misalignments, not hard logical contradictions.
type SoftContradictionType string

const (
	// Normative phrasing ("debo") without supporting urgency or pressure.
	SoftNormativeVsEvidence SoftContradictionType = "normative_vs_evidence"
	// Declared urgency vs evidence of none.
	SoftUrgencyMismatch SoftContradictionType = "urgency_mismatch"
	// Declared goal vs accepted incompatible costs.
	SoftGoalVsCosts SoftContradictionType = "goal_vs_costs"
	// Claims to preserve something the action erodes.
	SoftPreservationMismatch SoftContradictionType = "preservation_mismatch"
	// Described as temporary but binds long term.
	SoftTimeHorizonMismatch SoftContradictionType = "time_horizon_mismatch"
	// Alternatives exist but are denied or ignored.
	SoftAlternativesIgnored SoftContradictionType = "alternatives_ignored"
	// Attributed cause diverges from the described one.
	SoftCausalAttributionDrift SoftContradictionType = "causal_attribution_drift"
	// Key terms used without an operative definition.
	SoftSemanticAmbiguity SoftContradictionType = "semantic_ambiguity"
	// Two values or purposes collide without a hierarchy.
	SoftValueConflict SoftContradictionType = "value_conflict"
	// Responsibility placed outside without sufficient evidence.
	SoftAgencyExternalization SoftContradictionType = "agency_externalization"
)

func ValidSoftContradictionType(t string) bool {
	switch SoftContradictionType(t) {
	case SoftNormativeVsEvidence, SoftUrgencyMismatch, SoftGoalVsCosts,
		SoftPreservationMismatch, SoftTimeHorizonMismatch, SoftAlternativesIgnored,
		SoftCausalAttributionDrift, SoftSemanticAmbiguity, SoftValueConflict,
		SoftAgencyExternalization:
		return true
	}
	return false
}

type SoftContradictionSeverity string

const (
	SoftSeverityLow    SoftContradictionSeverity = "low"
	SoftSeverityMedium SoftContradictionSeverity = "medium"
	SoftSeverityHigh   SoftContradictionSeverity = "high"
)

func ValidSoftContradictionSeverity(s string) bool {
	switch SoftContradictionSeverity(s) {
	case SoftSeverityLow, SoftSeverityMedium, SoftSeverityHigh:
		return true
	}
	return false
}

// SoftContradictionAction is the suggested remedial action for a finding.
type SoftContradictionAction string

const (
	ActionNoteOnly        SoftContradictionAction = "note_only"
	ActionReframe         SoftContradictionAction = "reframe"
	ActionAskFollowup     SoftContradictionAction = "ask_followup"
	ActionLowerConfidence SoftContradictionAction = "lower_confidence"
	ActionStopAndRefine   SoftContradictionAction = "stop_and_refine"
)

func ValidSoftContradictionAction(a string) bool {
	switch SoftContradictionAction(a) {
	case ActionNoteOnly, ActionReframe, ActionAskFollowup,
		ActionLowerConfidence, ActionStopAndRefine:
		return true
	}
	return false
}

// DefaultAction maps each tension type to its default remedial action.
func (t SoftContradictionType) DefaultAction() SoftContradictionAction {
	switch t {
	case SoftNormativeVsEvidence, SoftUrgencyMismatch:
		return ActionReframe
	case SoftSemanticAmbiguity:
		return ActionStopAndRefine
	case SoftAgencyExternalization:
		return ActionLowerConfidence
	case SoftGoalVsCosts, SoftPreservationMismatch, SoftTimeHorizonMismatch,
		SoftAlternativesIgnored, SoftCausalAttributionDrift, SoftValueConflict:
		return ActionAskFollowup
	default:
		return ActionNoteOnly
	}
}

// SoftContradiction is one detected tension, serializable and deterministic.
type SoftContradiction struct {
	Type            SoftContradictionType     `json:"type"`
	Severity        SoftContradictionSeverity `json:"severity"`
	AffectedAxes    []Axis                    `json:"affected_axes"`
	Note            string                    `json:"note"`
	Evidence        []string                  `json:"evidence,omitempty"`
	SuggestedAction SoftContradictionAction   `json:"suggested_action"`
}
