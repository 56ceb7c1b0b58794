// Package patterns holds the static risk pattern library. The library is
// read-only configuration: it is parsed once at process start and shared by
// every session.
package patterns

import (
	_ "embed"
	"fmt"

	"github.com/rosatisoft/axioma-criterion-engine/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var rawLibrary []byte

// Load parses the embedded pattern library and validates its vocabulary
// fields. A malformed library is a configuration error, fatal at startup.
func Load() ([]domain.RiskPattern, error) {
	return Parse(rawLibrary)
}

// Parse decodes a pattern library from YAML. Exposed separately so an
// institution can load a tuned library from disk instead of the embedded one.
func Parse(data []byte) ([]domain.RiskPattern, error) {
	var pats []domain.RiskPattern
	if err := yaml.Unmarshal(data, &pats); err != nil {
		return nil, fmt.Errorf("parse risk pattern library: %w", err)
	}

	seen := make(map[string]bool, len(pats))
	for _, p := range pats {
		if p.ID == "" {
			return nil, fmt.Errorf("risk pattern with empty id")
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate risk pattern id: %s", p.ID)
		}
		seen[p.ID] = true

		if !domain.ValidRiskDomain(string(p.Domain)) {
			return nil, fmt.Errorf("risk pattern %s: invalid domain %q", p.ID, p.Domain)
		}
		if !domain.ValidRiskLevel(string(p.Severity)) {
			return nil, fmt.Errorf("risk pattern %s: invalid severity %q", p.ID, p.Severity)
		}
		if len(p.TriggerPhrases) == 0 {
			return nil, fmt.Errorf("risk pattern %s: no trigger phrases", p.ID)
		}
	}
	return pats, nil
}
