package model

import "testing"

// TestViolationIDStability tests that IDs depend only on content,
// not on detection order.
func TestViolationIDStability(t *testing.T) {
	t.Parallel()

	a := NewViolationID(OriginAuto, TopicAccessibility, "Images without alt text")
	b := NewViolationID(OriginAuto, TopicAccessibility, "Images without alt text")
	if a != b {
		t.Errorf("same content produced different IDs: %s vs %s", a, b)
	}

	c := NewViolationID(OriginManual, TopicAccessibility, "Images without alt text")
	if a == c {
		t.Error("different origins must produce different IDs")
	}

	d := NewViolationID(OriginAuto, TopicDataPrivacy, "Images without alt text")
	if a == d {
		t.Error("different topics must produce different IDs")
	}
}

// TestNewAutoViolation tests the automated violation constructor.
func TestNewAutoViolation(t *testing.T) {
	t.Parallel()

	v := NewAutoViolation(TopicTechnicalSecurity, "No SSL certificate", SeverityCritical)
	if v.Origin != OriginAuto {
		t.Errorf("origin = %v, expected auto", v.Origin)
	}
	if v.Topic != TopicTechnicalSecurity {
		t.Errorf("topic = %v, expected technical_security", v.Topic)
	}
	if v.Suppressed {
		t.Error("new violations must not be suppressed")
	}
	if v.ID == "" {
		t.Error("ID must be assigned at creation")
	}
}

// TestNewManualViolation tests the reviewer-added violation constructor.
func TestNewManualViolation(t *testing.T) {
	t.Parallel()

	v := NewManualViolation(TopicAccessibility, "Alt texts missing", SeverityCritical)
	if v.Origin != OriginManual {
		t.Errorf("origin = %v, expected manual", v.Origin)
	}
	if v.ID != NewViolationID(OriginManual, TopicAccessibility, "Alt texts missing") {
		t.Error("ID must be derived from content")
	}
}

// TestViolationOriginString tests origin display names.
func TestViolationOriginString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		origin   ViolationOrigin
		expected string
	}{
		{OriginAuto, "auto"},
		{OriginManual, "manual"},
		{ViolationOrigin(9), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.origin.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.origin.String(), tc.expected)
			}
		})
	}
}
