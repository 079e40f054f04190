package model

import (
	"encoding/json"
	"strings"
)

// Severity represents the compliance risk level of a violation.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. Persistence and snapshot files
// use the lowercase string form via the JSON methods below, which keeps
// hand-edited snapshots readable.
type Severity int

const (
	// SeverityLow indicates cosmetic issues with no compliance impact.
	SeverityLow Severity = iota

	// SeverityMedium indicates issues that should be addressed but carry
	// no regulatory exposure on their own.
	SeverityMedium

	// SeverityHigh indicates issues with real compliance exposure.
	// High violations count toward the score cap.
	SeverityHigh

	// SeverityCritical indicates unresolved regulatory risk.
	// A single active critical violation caps a topic below the "good"
	// threshold regardless of its uncapped score.
	SeverityCritical
)

// severityNames maps severities to their canonical string form.
var severityNames = map[Severity]string{
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

// String returns the lowercase canonical name, or "unknown".
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether the severity is one of the four defined levels.
// Violations with invalid severities are ignored for capping; the registry
// logs a warning instead of failing the analysis.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// CapRelevant reports whether violations of this severity can count toward
// the score cap. Only critical and high violations do.
func (s Severity) CapRelevant() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// ParseSeverity converts a string to a Severity.
// The second return value is false for unrecognized input, in which case
// the returned severity is invalid and will be skipped during capping.
func ParseSeverity(text string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return Severity(-1), false
	}
}

// MarshalJSON encodes the severity as its canonical string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity string. Unknown strings produce an
// invalid severity rather than an error, matching the engine's rule that
// malformed violation input degrades to a no-op instead of failing.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, _ := ParseSeverity(text)
	*s = parsed
	return nil
}
