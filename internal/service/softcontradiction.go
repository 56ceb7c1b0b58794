package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"go.uber.org/zap"
)

// SoftContradictionDetector finds internal tensions in the accumulated
// session text. Two tiers run in order: deterministic marker rules, then an
// optional generative pass whose output is validated against the closed
// taxonomy. A generative failure degrades silently to the deterministic
// findings.
type SoftContradictionDetector struct {
	generative domain.GenerativeClient
	logger     *zap.Logger
}

func NewSoftContradictionDetector(generative domain.GenerativeClient, logger *zap.Logger) *SoftContradictionDetector {
	return &SoftContradictionDetector{generative: generative, logger: logger}
}

// Marker sets for the deterministic tier. All matching runs over normalized
// text, so these are accent-free.
var (
	obligationMarkers = []string{
		"debo", "tengo que", "necesito", "ocupo", "es necesario", "es una necesidad",
	}
	lowUrgencyMarkers = []string{
		"sin urgencia", "no es urgente", "no hay urgencia", "sin prisa", "no urge",
	}
	reliefMarkers = []string{
		"mas tranquilo", "estaria mejor", "en paz", "mas estable",
	}
	costDismissalMarkers = []string{
		"no importa el costo", "a cualquier precio", "cueste lo que cueste",
		"sin importar las consecuencias",
	}
	goalMarkers = []string{
		"quiero lograr", "mi meta", "mi objetivo", "quiero conseguir",
	}
	preservationMarkers = []string{
		"salvar la relacion", "no perderlo", "no perderla", "mantener la relacion",
		"no quiero perder",
	}
	distressMarkers = []string{
		"sufro", "me hace dano", "infeliz", "ansiedad", "me lastima",
	}
	decisiveMarkers = []string{
		"ya decidi", "es la unica opcion", "no hay otra opcion", "no hay alternativa",
	}
	blameMarkers = []string{
		"por su culpa", "es culpa de", "por culpa de",
	}
	ownershipMarkers = []string{
		"yo decidi", "mi decision", "yo elegi",
	}
	proceedAnywayMarkers = []string{
		"de todos modos", "aun asi lo hare", "igual lo hare", "lo hare de todas formas",
	}
	externalizationMarkers = []string{
		"me obligan", "no tengo opcion", "no me queda de otra", "ellos deciden",
		"no depende de mi",
	}
	vaguenessMarkers = []string{
		"no estoy seguro", "no estoy segura", "tal vez", "quizas", "algo asi",
		"no se bien",
	}
)

// Detect runs both tiers and returns de-duplicated findings in detection
// order. The error return is reserved for structural failures; a generative
// failure is not one.
func (d *SoftContradictionDetector) Detect(ctx context.Context, obj *domain.DiscernmentObject) ([]domain.SoftContradiction, error) {
	text := Normalize(obj.AllText())

	findings := d.detectDeterministic(text, obj)

	if d.generative != nil {
		findings = append(findings, d.detectGenerative(ctx, obj)...)
	}

	return dedupeFindings(findings), nil
}

func (d *SoftContradictionDetector) detectDeterministic(text string, obj *domain.DiscernmentObject) []domain.SoftContradiction {
	var out []domain.SoftContradiction

	add := func(t domain.SoftContradictionType, sev domain.SoftContradictionSeverity,
		axes []domain.Axis, note string, evidence ...string) {
		out = append(out, domain.SoftContradiction{
			Type:            t,
			Severity:        sev,
			AffectedAxes:    axes,
			Note:            note,
			Evidence:        evidence,
			SuggestedAction: t.DefaultAction(),
		})
	}

	// Obligation language next to explicit low urgency.
	if ob, okOb := containsAny(text, obligationMarkers); okOb {
		if ur, okUr := containsAny(text, lowUrgencyMarkers); okUr {
			add(domain.SoftUrgencyMismatch, domain.SoftSeverityMedium,
				[]domain.Axis{domain.AxisFoundation, domain.AxisContext},
				fmt.Sprintf("Lenguaje de obligacion ('%s') junto a baja urgencia ('%s').", ob, ur),
				ob, ur)
		}

		// "Debo" justified only by anticipated relief, with no stated facts.
		if rl, okRl := containsAny(text, reliefMarkers); okRl && strings.TrimSpace(obj.Foundation.FactsKey) == "" {
			add(domain.SoftNormativeVsEvidence, domain.SoftSeverityMedium,
				[]domain.Axis{domain.AxisFoundation},
				fmt.Sprintf("Formulacion normativa ('%s') sostenida en alivio esperado ('%s') sin hechos declarados.", ob, rl),
				ob, rl)
		}
	}

	if gl, okGl := containsAny(text, goalMarkers); okGl {
		if cd, okCd := containsAny(text, costDismissalMarkers); okCd {
			add(domain.SoftGoalVsCosts, domain.SoftSeverityHigh,
				[]domain.Axis{domain.AxisPrinciple},
				fmt.Sprintf("Meta declarada ('%s') junto a descarte de costos ('%s').", gl, cd),
				gl, cd)
		}
	}

	if pv, okPv := containsAny(text, preservationMarkers); okPv {
		if ds, okDs := containsAny(text, distressMarkers); okDs {
			add(domain.SoftPreservationMismatch, domain.SoftSeverityHigh,
				[]domain.Axis{domain.AxisContext, domain.AxisPrinciple},
				fmt.Sprintf("Se busca preservar ('%s') algo descrito como dañino ('%s').", pv, ds),
				pv, ds)
		}
	}

	if sh, okSh := containsAny(text, shortHorizonMarkers); okSh {
		if lg, okLg := containsAny(text, longHorizonMarkers); okLg {
			add(domain.SoftTimeHorizonMismatch, domain.SoftSeverityMedium,
				[]domain.Axis{domain.AxisContext},
				fmt.Sprintf("Se describe como temporal ('%s') y a la vez de largo alcance ('%s').", sh, lg),
				sh, lg)
		}
	}

	if dc, okDc := containsAny(text, decisiveMarkers); okDc && strings.TrimSpace(obj.Context.AlternativesIdentified) == "" {
		add(domain.SoftAlternativesIgnored, domain.SoftSeverityMedium,
			[]domain.Axis{domain.AxisContext},
			fmt.Sprintf("Se declara cerrada la decision ('%s') sin alternativas exploradas.", dc),
			dc)
	}

	if bl, okBl := containsAny(text, blameMarkers); okBl {
		if ow, okOw := containsAny(text, ownershipMarkers); okOw {
			add(domain.SoftCausalAttributionDrift, domain.SoftSeverityLow,
				[]domain.Axis{domain.AxisFoundation},
				fmt.Sprintf("La causa atribuida ('%s') convive con agencia propia declarada ('%s').", bl, ow),
				bl, ow)
		}
	}

	if vagueCount(text) >= 2 {
		add(domain.SoftSemanticAmbiguity, domain.SoftSeverityLow,
			[]domain.Axis{domain.AxisFoundation},
			"Terminos clave usados de forma vaga en varios puntos del relato.")
	}

	if strings.TrimSpace(obj.Principle.ValuesCompromised) != "" {
		if pa, okPa := containsAny(text, proceedAnywayMarkers); okPa {
			add(domain.SoftValueConflict, domain.SoftSeverityHigh,
				[]domain.Axis{domain.AxisPrinciple},
				fmt.Sprintf("Valores declarados en riesgo y decision de avanzar de todas formas ('%s').", pa),
				pa)
		}
	}

	if ex, okEx := containsAny(text, externalizationMarkers); okEx {
		add(domain.SoftAgencyExternalization, domain.SoftSeverityMedium,
			[]domain.Axis{domain.AxisPrinciple},
			fmt.Sprintf("La responsabilidad de la decision se situa fuera del agente ('%s').", ex),
			ex)
	}

	return out
}

func vagueCount(text string) int {
	n := 0
	for _, m := range vaguenessMarkers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

// rawSoftFinding mirrors the JSON shape requested from the generative tier.
type rawSoftFinding struct {
	Type            string   `json:"type"`
	Severity        string   `json:"severity"`
	AffectedAxes    []string `json:"affected_axes"`
	Note            string   `json:"note"`
	SuggestedAction string   `json:"suggested_action"`
}

func (d *SoftContradictionDetector) detectGenerative(ctx context.Context, obj *domain.DiscernmentObject) []domain.SoftContradiction {
	out, err := d.generative.Generate(ctx, fmt.Sprintf(softContradictionPrompt, obj.AllText()))
	if err != nil {
		d.logger.Debug("generative soft contradiction pass failed", zap.Error(err))
		return nil
	}

	var raw []rawSoftFinding
	if err := json.Unmarshal([]byte(stripMarkdownFences(out)), &raw); err != nil {
		d.logger.Debug("generative soft contradiction output not parseable", zap.Error(err))
		return nil
	}

	var findings []domain.SoftContradiction
	for _, r := range raw {
		if !domain.ValidSoftContradictionType(r.Type) || !domain.ValidSoftContradictionSeverity(r.Severity) {
			continue
		}
		if strings.TrimSpace(r.Note) == "" {
			continue
		}
		var axes []domain.Axis
		for _, a := range r.AffectedAxes {
			if domain.ValidAxis(a) {
				axes = append(axes, domain.Axis(a))
			}
		}
		t := domain.SoftContradictionType(r.Type)
		action := t.DefaultAction()
		if domain.ValidSoftContradictionAction(r.SuggestedAction) {
			action = domain.SoftContradictionAction(r.SuggestedAction)
		}
		findings = append(findings, domain.SoftContradiction{
			Type:            t,
			Severity:        domain.SoftContradictionSeverity(r.Severity),
			AffectedAxes:    axes,
			Note:            strings.TrimSpace(r.Note),
			SuggestedAction: action,
		})
	}
	return findings
}

// dedupeFindings drops findings whose note was already seen, keeping
// first-detection order.
func dedupeFindings(findings []domain.SoftContradiction) []domain.SoftContradiction {
	seen := make(map[string]bool, len(findings))
	out := findings[:0]
	for _, f := range findings {
		if seen[f.Note] {
			continue
		}
		seen[f.Note] = true
		out = append(out, f)
	}
	return out
}
