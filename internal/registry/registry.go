package registry

import (
	"log/slog"

	"github.com/webfacts/presencescore/internal/model"
)

// Registry evaluates violations against the neutralization rules and the
// reviewer's manual input.
type Registry struct {
	// logger receives warnings about malformed violations.
	logger *slog.Logger
}

// New creates a Registry. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Evaluate classifies a topic's violations for capping.
//
// Every input violation appears in the output exactly once, including
// suppressed and neutralized ones. The output additionally contains
// reviewer-added custom violations for the topic and violations asserted
// by an explicit manual "false" answer. Ordering is inputs first, then
// custom, then asserted.
//
// A violation counts toward the cap iff all of the following hold:
//   - its severity is critical or high,
//   - it is not suppressed (flag or reviewer suppression list),
//   - no neutralization rule matches it with an explicitly true field.
//
// Violations with an invalid severity are kept on the audit list but never
// count; a warning is logged instead of failing the analysis.
func (r *Registry) Evaluate(topic model.Topic, violations []model.Violation, overrides *model.ManualOverrides) []model.ViolationStatus {
	rules := RulesFor(topic)
	statuses := make([]model.ViolationStatus, 0, len(violations)+2)
	seen := make(map[model.ViolationID]bool, len(violations))

	appendViolation := func(v model.Violation) {
		if seen[v.ID] {
			return
		}
		seen[v.ID] = true
		statuses = append(statuses, r.evaluateOne(topic, v, rules, overrides))
	}

	for _, v := range violations {
		appendViolation(v)
	}
	for _, v := range overrides.CustomViolationsFor(topic) {
		appendViolation(v)
	}

	// An explicit "false" answer asserts the violation even when automated
	// detection found nothing. Deduplication by ID keeps the assertion
	// idempotent when detection already reported it.
	for _, rule := range rules {
		answer := rule.Field(overrides)
		if answer == nil || *answer {
			continue
		}
		appendViolation(model.NewManualViolation(topic, rule.AssertDescription, rule.AssertSeverity))
	}

	return statuses
}

// evaluateOne computes the capping status for a single violation.
func (r *Registry) evaluateOne(topic model.Topic, v model.Violation, rules []NeutralizationRule, overrides *model.ManualOverrides) model.ViolationStatus {
	status := model.ViolationStatus{Violation: v}

	if !v.Severity.Valid() {
		r.logger.Warn("violation with invalid severity ignored for capping",
			"topic", topic,
			"violation", v.ID,
			"description", v.Description,
		)
		return status
	}
	if !v.Severity.CapRelevant() {
		return status
	}
	if v.Suppressed || overrides.IsSuppressed(v.ID) {
		return status
	}

	for _, rule := range rules {
		if !rule.Match.MatchString(v.Description) {
			continue
		}
		if rule.Exclude != nil && rule.Exclude.MatchString(v.Description) {
			continue
		}
		if answer := rule.Field(overrides); answer != nil && *answer {
			status.NeutralizedBy = rule.Name
			return status
		}
	}

	status.CountsTowardCap = true
	return status
}

// ActiveCount returns the number of statuses that count toward the cap.
// This is the "active critical count" consumed by the score capper.
func ActiveCount(statuses []model.ViolationStatus) int {
	n := 0
	for _, s := range statuses {
		if s.CountsTowardCap {
			n++
		}
	}
	return n
}
