package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"go.uber.org/zap"
)

var ErrStatementEmpty = errors.New("original statement must be non-empty")

// Stop reasons recorded in the audit trail.
const (
	stopMaxTurns            = "max_turns_reached"
	stopMinimumCompleteness = "minimum_completeness_reached"
	stopPerAxisMax          = "per_axis_max_reached"
)

// AskFunc blocks until the session driver supplies an answer for a question.
// An empty answer is accepted: it consumes the turn but is not applied to
// any axis block.
type AskFunc func(questionID, prompt string) string

// InterviewConfig holds the safety/usability constraints of one session.
type InterviewConfig struct {
	MaxTurns                  int
	PerAxisMax                int
	AllowSingleReorientation  bool
	StopOnMinimumCompleteness bool
}

func DefaultInterviewConfig() InterviewConfig {
	return InterviewConfig{
		MaxTurns:                  12,
		PerAxisMax:                3,
		AllowSingleReorientation:  true,
		StopOnMinimumCompleteness: true,
	}
}

// InterviewService drives the guided interview: theme selection, axis
// questions in bank order, stop criteria, at most one evidence-driven
// reorientation, then finalization.
type InterviewService struct {
	classifier *ThemeClassifier
	generative domain.GenerativeClient
	soft       *SoftContradictionDetector
	risk       *RiskPatternDetector
	cfg        InterviewConfig
	logger     *zap.Logger
}

func NewInterviewService(
	classifier *ThemeClassifier,
	generative domain.GenerativeClient,
	soft *SoftContradictionDetector,
	risk *RiskPatternDetector,
	cfg InterviewConfig,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		classifier: classifier,
		generative: generative,
		soft:       soft,
		risk:       risk,
		cfg:        cfg,
		logger:     logger,
	}
}

// Run executes one interview session and returns the finalized discernment
// object. The object is owned by this session; callers must not share it
// across concurrent sessions.
func (s *InterviewService) Run(ctx context.Context, statement string, ask AskFunc) (*domain.DiscernmentObject, error) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return nil, ErrStatementEmpty
	}

	theme := s.classifier.Classify(ctx, statement)
	obj := domain.NewDiscernmentObject(statement, theme)

	state := &domain.InterviewState{}
	askedPerAxis := map[domain.Axis]int{
		domain.AxisFoundation: 0,
		domain.AxisContext:    0,
		domain.AxisPrinciple:  0,
	}

	s.logger.Info("interview started",
		zap.String("session_id", obj.SessionID.String()),
		zap.String("theme", string(theme)))

	if s.askQuestions(obj, state, askedPerAxis, ask) {
		// Replay the new theme's bank once; de-dup skips what was asked.
		s.askQuestions(obj, state, askedPerAxis, ask)
	}
	// Record the stop reason when the bank ran out before a mid-loop check.
	s.shouldStop(obj, state, askedPerAxis)
	s.finalize(ctx, obj, state)

	s.logger.Info("interview finished",
		zap.String("session_id", obj.SessionID.String()),
		zap.Int("turns", state.Turns),
		zap.String("stop_reason", state.StopReason),
		zap.String("completeness", string(obj.Completeness)))

	return obj, nil
}

// askQuestions walks the current theme's bank once: skip asked questions and
// capped axes, ask, apply, then check reorientation signals. Returns true if
// the session reoriented mid-walk (the caller replays once under the new
// theme's bank).
func (s *InterviewService) askQuestions(
	obj *domain.DiscernmentObject,
	state *domain.InterviewState,
	askedPerAxis map[domain.Axis]int,
	ask AskFunc,
) bool {
	for _, q := range QuestionsForTheme(obj.DominantTheme) {
		if s.shouldStop(obj, state, askedPerAxis) {
			return false
		}
		if state.WasAsked(q.ID) {
			continue
		}
		if askedPerAxis[q.Axis] >= s.cfg.PerAxisMax {
			continue
		}

		state.Turns++
		state.Asked = append(state.Asked, q.ID)
		answer := strings.TrimSpace(ask(q.ID, q.Prompt))
		askedPerAxis[q.Axis]++

		s.applyAnswer(obj, q.Axis, answer)

		if s.cfg.AllowSingleReorientation {
			prior := obj.DominantTheme
			s.detectSignalsAndMaybeReorient(obj, state)
			if state.Reoriented && obj.DominantTheme != prior {
				obj.AppendNote(fmt.Sprintf("Reoriented theme: %s -> %s", prior, obj.DominantTheme))
				s.logger.Info("session reoriented",
					zap.String("session_id", obj.SessionID.String()),
					zap.String("from", string(prior)),
					zap.String("to", string(obj.DominantTheme)))
				return true
			}
		}
	}
	return false
}

func (s *InterviewService) applyAnswer(obj *domain.DiscernmentObject, axis domain.Axis, answer string) {
	if answer == "" {
		// Silence is a signal; never force content into an axis block.
		return
	}

	switch axis {
	case domain.AxisFoundation:
		obj.Foundation.FactsKey = domain.AppendLine(obj.Foundation.FactsKey, answer)
		obj.Foundation.Clarity = inferClarity(obj.Foundation.FactsKey)

	case domain.AxisContext:
		obj.Context.CurrentSituation = domain.AppendLine(obj.Context.CurrentSituation, answer)
		obj.Context.TimeHorizon = inferTimeHorizon(obj.Context.CurrentSituation)

	case domain.AxisPrinciple:
		if obj.Principle.DeclaredPurpose == "" {
			obj.Principle.DeclaredPurpose = answer
		} else {
			// First answer stays the declared purpose; later ones are nuance.
			obj.AppendNote("Principle nuance: " + answer)
		}
		obj.Principle.Alignment = inferAlignment(obj.Principle.DeclaredPurpose)
	}
}

// shouldStop evaluates the stop criteria in order; first match wins.
func (s *InterviewService) shouldStop(
	obj *domain.DiscernmentObject,
	state *domain.InterviewState,
	askedPerAxis map[domain.Axis]int,
) bool {
	if state.StopReason != "" {
		return true
	}

	if state.Turns >= s.cfg.MaxTurns {
		state.StopReason = stopMaxTurns
		return true
	}

	if s.cfg.StopOnMinimumCompleteness &&
		obj.HasFoundation() && obj.HasContext() && obj.HasPrinciple() {
		state.StopReason = stopMinimumCompleteness
		return true
	}

	if askedPerAxis[domain.AxisFoundation] >= s.cfg.PerAxisMax &&
		askedPerAxis[domain.AxisContext] >= s.cfg.PerAxisMax &&
		askedPerAxis[domain.AxisPrinciple] >= s.cfg.PerAxisMax {
		state.StopReason = stopPerAxisMax
		return true
	}

	return false
}

// Reorientation signal sets, scanned over all accumulated text in priority
// order (ethics first).
var (
	ethicalSignals = []string{
		"se que esta mal", "no es correcto", "engana", "fraude",
		"mentir", "corrup", "trampa",
	}
	pressureSignals = []string{
		"me obligan", "me exigen", "amenaza", "ultimatum",
		"si no", "me presionan",
	}
)

// detectSignalsAndMaybeReorient scans accumulated text for thematic signals.
// Controlled: a session can reorient only once, regardless of later signals.
func (s *InterviewService) detectSignalsAndMaybeReorient(obj *domain.DiscernmentObject, state *domain.InterviewState) {
	text := Normalize(obj.AllText())

	if !state.Reoriented {
		if _, ok := containsAny(text, ethicalSignals); ok && obj.DominantTheme != domain.ThemeEthicsValues {
			obj.MergeSecondaryTheme(obj.DominantTheme)
			obj.DominantTheme = domain.ThemeEthicsValues
			state.Reoriented = true
			return
		}
		if _, ok := containsAny(text, pressureSignals); ok && obj.DominantTheme != domain.ThemeExternalPressure {
			obj.MergeSecondaryTheme(obj.DominantTheme)
			obj.DominantTheme = domain.ThemeExternalPressure
			state.Reoriented = true
			return
		}
	}

	// Minimal hard-contradiction check on declared stance.
	if strings.Contains(text, "no me afecta") && strings.Contains(text, "me preocupa") &&
		!hasContradiction(obj, domain.ContradictionCoherence) {
		obj.AddContradiction(
			"Posible inconsistencia interna: 'no me afecta' vs 'me preocupa'.",
			[]domain.Axis{domain.AxisContext, domain.AxisPrinciple},
			domain.ContradictionCoherence,
		)
	}
}

func hasContradiction(obj *domain.DiscernmentObject, t domain.ContradictionType) bool {
	for _, c := range obj.Contradictions {
		if c.Type == t {
			return true
		}
	}
	return false
}

// finalize derives the decision object and completeness, appends audit
// notes, and runs both detectors. Each detector is fault-isolated: a failure
// contributes an empty result and a note, never an aborted session.
func (s *InterviewService) finalize(ctx context.Context, obj *domain.DiscernmentObject, state *domain.InterviewState) {
	if obj.DecisionObject == "" {
		obj.DecisionObject = s.deriveDecisionObject(ctx, obj)
	}

	obj.RecomputeCompleteness()

	if state.StopReason != "" {
		obj.AppendNote("Stop reason: " + state.StopReason)
	}
	obj.AppendNote(fmt.Sprintf("Turns: %d", state.Turns))

	findings, err := s.soft.Detect(ctx, obj)
	if err != nil {
		s.logger.Warn("soft contradiction detection failed",
			zap.String("session_id", obj.SessionID.String()), zap.Error(err))
		obj.AppendNote("Soft contradiction detection failed; no findings recorded")
		findings = nil
	}
	obj.SoftContradictions = findings
	if len(findings) > 0 {
		obj.AppendNote(fmt.Sprintf("Soft contradictions: %d", len(findings)))
	}
	promoteFindings(obj, findings)

	report, err := s.risk.Detect(ctx, obj)
	if err != nil {
		s.logger.Warn("risk pattern detection failed",
			zap.String("session_id", obj.SessionID.String()), zap.Error(err))
		obj.AppendNote("Risk pattern detection failed; no signals recorded")
		report = domain.RiskReport{Signals: []domain.RiskSignal{}}
	}
	if report.Signals == nil {
		report.Signals = []domain.RiskSignal{}
	}
	obj.RiskSignals = report.Signals
	obj.RiskDelta = report.RiskDelta
	obj.MissingContextCount = report.MissingContextCount
	if len(report.Signals) > 0 {
		obj.AppendNote(fmt.Sprintf("Risk signals: %d", len(report.Signals)))
	}
}

// promoteFindings lifts high-severity soft findings into the hard
// contradiction list as coherence items, so the scoring engine penalizes
// them. Lower severities stay advisory.
func promoteFindings(obj *domain.DiscernmentObject, findings []domain.SoftContradiction) {
	for _, f := range findings {
		if f.Severity != domain.SoftSeverityHigh {
			continue
		}
		obj.AddContradiction(f.Note, f.AffectedAxes, domain.ContradictionCoherence)
	}
}

func (s *InterviewService) deriveDecisionObject(ctx context.Context, obj *domain.DiscernmentObject) string {
	if s.generative != nil {
		prompt := fmt.Sprintf(decisionObjectPrompt,
			obj.DominantTheme,
			obj.OriginalStatement,
			obj.Foundation.FactsKey,
			obj.Context.CurrentSituation,
			obj.Principle.DeclaredPurpose,
		)
		out, err := s.generative.Generate(ctx, prompt)
		if err == nil {
			if out = strings.TrimSpace(out); out != "" {
				return out
			}
		} else {
			s.logger.Debug("decision object derivation failed, using fallback", zap.Error(err))
		}
	}
	return fmt.Sprintf("%s (theme=%s)", obj.OriginalStatement, obj.DominantTheme)
}
