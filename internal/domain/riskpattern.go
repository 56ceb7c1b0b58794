package domain

type RiskDomain string

const (
	DomainRelationships RiskDomain = "relationships"
	DomainMoneyWork     RiskDomain = "money_work"
	DomainHealthCare    RiskDomain = "health_care"
)

func ValidRiskDomain(d string) bool {
	switch RiskDomain(d) {
	case DomainRelationships, DomainMoneyWork, DomainHealthCare:
		return true
	}
	return false
}

// RiskPattern is one curated, trigger-phrase-keyed description of a recurring
// risky situation. The library is static configuration loaded at process
// start; the detector never judges, it reports.
type RiskPattern struct {
	ID                  string     `yaml:"id" json:"id"`
	Domain              RiskDomain `yaml:"domain" json:"domain"`
	Title               string     `yaml:"title" json:"title"`
	TriggerPhrases      []string   `yaml:"trigger_phrases" json:"trigger_phrases"`
	ObservedRisks       []string   `yaml:"observed_risks" json:"observed_risks"`
	MissingCriticalData []string   `yaml:"missing_critical_data" json:"missing_critical_data"`
	FollowupQuestions   []string   `yaml:"followup_questions" json:"followup_questions"`
	Severity            RiskLevel  `yaml:"severity" json:"severity"`
}

// RiskSignal is one activated pattern with its evidence.
type RiskSignal struct {
	PatternID           string     `json:"pattern_id"`
	Domain              RiskDomain `json:"domain"`
	Title               string     `json:"title"`
	Severity            RiskLevel  `json:"severity"`
	ObservedRisks       []string   `json:"observed_risks"`
	MissingCriticalData []string   `json:"missing_critical_data"`
	FollowupQuestions   []string   `json:"followup_questions"`
	EvidenceHits        []string   `json:"evidence_hits"`
}

// RiskReport aggregates all activated patterns for one object.
type RiskReport struct {
	Signals             []RiskSignal `json:"signals"`
	RiskDelta           float64      `json:"risk_delta"`
	MissingContextCount int          `json:"missing_context_count"`
}
