package model

import (
	"fmt"
	"hash/fnv"
)

// ViolationOrigin indicates where a violation came from.
type ViolationOrigin int

const (
	// OriginAuto marks violations produced by automated detection.
	OriginAuto ViolationOrigin = iota

	// OriginManual marks violations added by a reviewer, including those
	// derived from an explicit "not present" assertion that contradicts
	// automated detection.
	OriginManual
)

// String returns a human-readable origin name.
func (o ViolationOrigin) String() string {
	switch o {
	case OriginAuto:
		return "auto"
	case OriginManual:
		return "manual"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the origin as its string name.
func (o ViolationOrigin) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON decodes an origin string. Unknown values default to auto.
func (o *ViolationOrigin) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"manual"`:
		*o = OriginManual
	default:
		*o = OriginAuto
	}
	return nil
}

// ViolationID is a stable identity for a violation.
//
// Design decision: The original implementation keyed suppression on
// positional strings ("auto-3"), so re-running detection or reordering
// results silently changed which violations were suppressed. IDs here are
// derived from the violation's content at creation time and survive both.
type ViolationID string

// NewViolationID derives a stable identity from the violation's origin,
// topic, and description via FNV-1a. Identical content always yields the
// same ID, so suppression lookups are order-independent.
func NewViolationID(origin ViolationOrigin, topic Topic, description string) ViolationID {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", origin, topic, description)
	return ViolationID(fmt.Sprintf("v-%016x", h.Sum64()))
}

// Violation is a detected or asserted compliance issue.
type Violation struct {
	// ID is the stable identity assigned at creation.
	ID ViolationID `json:"id"`

	// Topic is the scored concern this violation belongs to.
	Topic Topic `json:"topic"`

	// Description is the human-readable finding text.
	// Neutralization rules pattern-match against it.
	Description string `json:"description"`

	// Severity is the compliance risk level.
	Severity Severity `json:"severity"`

	// Origin records whether the violation was detected automatically
	// or added by a reviewer.
	Origin ViolationOrigin `json:"origin"`

	// Suppressed means a reviewer chose to exclude the violation from
	// scoring without disputing that it exists. Suppressed violations
	// never count toward the cap but stay on the audit list.
	Suppressed bool `json:"suppressed,omitempty"`
}

// NewAutoViolation creates an automated-detection violation with a stable ID.
func NewAutoViolation(topic Topic, description string, severity Severity) Violation {
	return Violation{
		ID:          NewViolationID(OriginAuto, topic, description),
		Topic:       topic,
		Description: description,
		Severity:    severity,
		Origin:      OriginAuto,
	}
}

// NewManualViolation creates a reviewer-added violation with a stable ID.
func NewManualViolation(topic Topic, description string, severity Severity) Violation {
	return Violation{
		ID:          NewViolationID(OriginManual, topic, description),
		Topic:       topic,
		Description: description,
		Severity:    severity,
		Origin:      OriginManual,
	}
}

// ViolationStatus is a violation together with its capping evaluation.
// Every violation passed to the registry appears in the output, including
// neutralized and suppressed ones: neutralization removes a violation from
// the cap count, never from the audit trail.
type ViolationStatus struct {
	// Violation is the evaluated violation.
	Violation Violation `json:"violation"`

	// CountsTowardCap reports whether the violation contributes to the
	// active critical count used by the score capper.
	CountsTowardCap bool `json:"counts_toward_cap"`

	// NeutralizedBy names the manual fact that neutralized the violation,
	// empty if it was not neutralized.
	NeutralizedBy string `json:"neutralized_by,omitempty"`
}
