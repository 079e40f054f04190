package registry

import (
	"testing"

	"github.com/webfacts/presencescore/internal/model"
)

// TestEvaluateSeverityFilter tests that only critical and high violations
// can count toward the cap.
func TestEvaluateSeverityFilter(t *testing.T) {
	t.Parallel()

	violations := []model.Violation{
		model.NewAutoViolation(model.TopicTechnicalSecurity, "No SSL certificate found", model.SeverityCritical),
		model.NewAutoViolation(model.TopicTechnicalSecurity, "Server header disclosure", model.SeverityMedium),
		model.NewAutoViolation(model.TopicTechnicalSecurity, "Missing security headers", model.SeverityLow),
		model.NewAutoViolation(model.TopicTechnicalSecurity, "Outdated server software detected", model.SeverityHigh),
	}

	statuses := New(nil).Evaluate(model.TopicTechnicalSecurity, violations, nil)
	if len(statuses) != 4 {
		t.Fatalf("expected all 4 violations on the audit list, got %d", len(statuses))
	}
	if ActiveCount(statuses) != 2 {
		t.Errorf("active count = %d, expected 2 (critical + high)", ActiveCount(statuses))
	}
}

// TestEvaluateNeutralization tests that a manual "true" removes a matching
// violation from the cap count without deleting it from the audit list.
func TestEvaluateNeutralization(t *testing.T) {
	t.Parallel()

	violations := []model.Violation{
		model.NewAutoViolation(model.TopicTechnicalSecurity, "No SSL certificate found", model.SeverityCritical),
	}
	overrides := &model.ManualOverrides{
		Security: &model.SecurityOverride{HasSSL: model.Ptr(true)},
	}

	statuses := New(nil).Evaluate(model.TopicTechnicalSecurity, violations, overrides)
	if len(statuses) != 1 {
		t.Fatalf("neutralization must not delete the violation, got %d entries", len(statuses))
	}
	if statuses[0].CountsTowardCap {
		t.Error("neutralized violation must not count toward the cap")
	}
	if statuses[0].NeutralizedBy != "has_ssl" {
		t.Errorf("NeutralizedBy = %q, expected %q", statuses[0].NeutralizedBy, "has_ssl")
	}
}

// TestEvaluateExcludePattern tests that the HSTS exclusion keeps TLS
// confirmations from neutralizing HSTS findings.
func TestEvaluateExcludePattern(t *testing.T) {
	t.Parallel()

	violations := []model.Violation{
		model.NewAutoViolation(model.TopicTechnicalSecurity, "HSTS (TLS strict transport) header missing", model.SeverityHigh),
	}
	overrides := &model.ManualOverrides{
		Security: &model.SecurityOverride{HasSSL: model.Ptr(true)},
	}

	statuses := New(nil).Evaluate(model.TopicTechnicalSecurity, violations, overrides)
	if !statuses[0].CountsTowardCap {
		t.Error("HSTS violation must not be neutralized by an SSL confirmation")
	}
}

// TestEvaluateManualAssertion tests that an explicit "false" adds a counted
// violation even when automated detection is clean.
func TestEvaluateManualAssertion(t *testing.T) {
	t.Parallel()

	overrides := &model.ManualOverrides{
		Accessibility: &model.AccessibilityOverride{AltTextsPresent: model.Ptr(false)},
	}

	statuses := New(nil).Evaluate(model.TopicAccessibility, nil, overrides)
	if len(statuses) != 1 {
		t.Fatalf("expected 1 asserted violation, got %d", len(statuses))
	}
	v := statuses[0].Violation
	if v.Origin != model.OriginManual {
		t.Errorf("asserted violation origin = %v, expected manual", v.Origin)
	}
	if v.Severity != model.SeverityCritical {
		t.Errorf("asserted violation severity = %v, expected critical", v.Severity)
	}
	if !statuses[0].CountsTowardCap {
		t.Error("asserted violation must count toward the cap")
	}
}

// TestEvaluateAssertionDeduplicates tests that an assertion does not add a
// second entry when detection already reported the same violation.
func TestEvaluateAssertionDeduplicates(t *testing.T) {
	t.Parallel()

	detected := model.NewManualViolation(model.TopicAccessibility, "Alt texts missing on images", model.SeverityCritical)
	overrides := &model.ManualOverrides{
		Accessibility: &model.AccessibilityOverride{AltTextsPresent: model.Ptr(false)},
		CustomViolations: []model.Violation{detected},
	}

	statuses := New(nil).Evaluate(model.TopicAccessibility, nil, overrides)
	if len(statuses) != 1 {
		t.Fatalf("expected deduplicated audit list, got %d entries", len(statuses))
	}
}

// TestEvaluateSuppression tests both suppression paths: the violation flag
// and the reviewer suppression list.
func TestEvaluateSuppression(t *testing.T) {
	t.Parallel()

	flagged := model.NewAutoViolation(model.TopicDataPrivacy, "Cookie consent banner missing", model.SeverityHigh)
	flagged.Suppressed = true
	listed := model.NewAutoViolation(model.TopicDataPrivacy, "Privacy policy missing", model.SeverityCritical)

	overrides := &model.ManualOverrides{
		Suppressed: []model.ViolationID{listed.ID},
	}

	statuses := New(nil).Evaluate(model.TopicDataPrivacy, []model.Violation{flagged, listed}, overrides)
	if len(statuses) != 2 {
		t.Fatalf("suppressed violations must stay on the audit list, got %d", len(statuses))
	}
	if ActiveCount(statuses) != 0 {
		t.Errorf("active count = %d, expected 0", ActiveCount(statuses))
	}
}

// TestEvaluateInvalidSeverity tests that malformed severities degrade to a
// no-op instead of failing.
func TestEvaluateInvalidSeverity(t *testing.T) {
	t.Parallel()

	v := model.Violation{
		ID:          "v-bogus",
		Topic:       model.TopicDataPrivacy,
		Description: "corrupted entry",
		Severity:    model.Severity(-1),
	}

	statuses := New(nil).Evaluate(model.TopicDataPrivacy, []model.Violation{v}, nil)
	if len(statuses) != 1 {
		t.Fatalf("malformed violation must stay on the audit list, got %d", len(statuses))
	}
	if statuses[0].CountsTowardCap {
		t.Error("malformed violation must not count toward the cap")
	}
}

// TestEvaluateCustomViolations tests reviewer-added violations.
func TestEvaluateCustomViolations(t *testing.T) {
	t.Parallel()

	custom := model.NewManualViolation(model.TopicDataPrivacy, "Contact form transmits data unencrypted", model.SeverityCritical)
	overrides := &model.ManualOverrides{CustomViolations: []model.Violation{custom}}

	statuses := New(nil).Evaluate(model.TopicDataPrivacy, nil, overrides)
	if len(statuses) != 1 || !statuses[0].CountsTowardCap {
		t.Fatalf("custom critical violation must count, got %+v", statuses)
	}
}

// TestRulesForCoverage tests that all compliance topics carry rules and
// other topics none.
func TestRulesForCoverage(t *testing.T) {
	t.Parallel()

	for _, topic := range []model.Topic{
		model.TopicAccessibility,
		model.TopicDataPrivacy,
		model.TopicTechnicalSecurity,
	} {
		if len(RulesFor(topic)) == 0 {
			t.Errorf("topic %s must carry neutralization rules", topic)
		}
	}
	if len(RulesFor(model.TopicBacklinks)) != 0 {
		t.Error("backlinks must carry no neutralization rules")
	}
}
