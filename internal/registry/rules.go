package registry

import (
	"regexp"

	"github.com/webfacts/presencescore/internal/model"
)

// NeutralizationRule maps a violation pattern to the manual fact that
// resolves it. A rule neutralizes matching violations when its field is
// explicitly true and asserts a new violation when it is explicitly false.
//
// Design decision: Rules are declarative data rather than code per topic.
// This keeps the neutralize/assert asymmetry in one place and makes the
// rule set testable as a table.
type NeutralizationRule struct {
	// Name identifies the manual fact, recorded as NeutralizedBy on the
	// audit list when the rule fires.
	Name string

	// Match selects violations by description.
	Match *regexp.Regexp

	// Exclude exempts descriptions from Match. Optional.
	// Example: SSL violations are neutralized by a confirmed certificate,
	// but HSTS violations mention TLS too and need their own fact.
	Exclude *regexp.Regexp

	// Field extracts the tri-state answer from the manual overrides.
	// Must tolerate nil overrides.
	Field func(*model.ManualOverrides) *bool

	// AssertDescription is the violation text added when the field is
	// explicitly false.
	AssertDescription string

	// AssertSeverity is the severity of the asserted violation.
	AssertSeverity model.Severity
}

// topicRules holds the per-topic neutralization rule tables.
// Only the compliance-capped topics carry rules; other topics have no
// neutralizable violations.
var topicRules = map[model.Topic][]NeutralizationRule{
	model.TopicAccessibility: {
		{
			Name:  "alt_texts_present",
			Match: regexp.MustCompile(`(?i)alt.?text`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Accessibility == nil {
					return nil
				}
				return o.Accessibility.AltTextsPresent
			},
			AssertDescription: "Alt texts missing on images",
			AssertSeverity:    model.SeverityCritical,
		},
		{
			Name:  "contrast_sufficient",
			Match: regexp.MustCompile(`(?i)contrast`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Accessibility == nil {
					return nil
				}
				return o.Accessibility.ContrastSufficient
			},
			AssertDescription: "Insufficient color contrast",
			AssertSeverity:    model.SeverityCritical,
		},
		{
			Name:  "keyboard_navigable",
			Match: regexp.MustCompile(`(?i)keyboard`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Accessibility == nil {
					return nil
				}
				return o.Accessibility.KeyboardNavigable
			},
			AssertDescription: "Site not navigable by keyboard",
			AssertSeverity:    model.SeverityHigh,
		},
		{
			Name:  "aria_labels_present",
			Match: regexp.MustCompile(`(?i)aria`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Accessibility == nil {
					return nil
				}
				return o.Accessibility.AriaLabelsPresent
			},
			AssertDescription: "ARIA labels missing on interactive elements",
			AssertSeverity:    model.SeverityHigh,
		},
		{
			Name:  "font_scalable",
			Match: regexp.MustCompile(`(?i)font.?(size|scal)`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Accessibility == nil {
					return nil
				}
				return o.Accessibility.FontScalable
			},
			AssertDescription: "Font sizes not scalable",
			AssertSeverity:    model.SeverityMedium,
		},
	},

	model.TopicTechnicalSecurity: {
		{
			Name:    "has_ssl",
			Match:   regexp.MustCompile(`(?i)SSL|TLS`),
			Exclude: regexp.MustCompile(`(?i)HSTS`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Security == nil {
					return nil
				}
				return o.Security.HasSSL
			},
			AssertDescription: "No SSL/TLS encryption",
			AssertSeverity:    model.SeverityCritical,
		},
		{
			Name:  "hsts",
			Match: regexp.MustCompile(`(?i)HSTS`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Security == nil {
					return nil
				}
				return o.Security.HSTS
			},
			AssertDescription: "HSTS header missing",
			AssertSeverity:    model.SeverityHigh,
		},
		{
			Name:  "up_to_date_server",
			Match: regexp.MustCompile(`(?i)outdated|end.?of.?life`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Security == nil {
					return nil
				}
				return o.Security.UpToDateServer
			},
			AssertDescription: "Outdated server software",
			AssertSeverity:    model.SeverityHigh,
		},
	},

	model.TopicDataPrivacy: {
		{
			Name:  "privacy_policy_present",
			Match: regexp.MustCompile(`(?i)privacy.?policy|datenschutz`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Privacy == nil {
					return nil
				}
				return o.Privacy.PrivacyPolicyPresent
			},
			AssertDescription: "Privacy policy missing",
			AssertSeverity:    model.SeverityCritical,
		},
		{
			Name:  "imprint_present",
			Match: regexp.MustCompile(`(?i)imprint|impressum`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Privacy == nil {
					return nil
				}
				return o.Privacy.ImprintPresent
			},
			AssertDescription: "Imprint missing",
			AssertSeverity:    model.SeverityCritical,
		},
		{
			Name:  "cookie_consent_banner",
			Match: regexp.MustCompile(`(?i)cookie`),
			Field: func(o *model.ManualOverrides) *bool {
				if o == nil || o.Privacy == nil {
					return nil
				}
				return o.Privacy.CookieConsentBanner
			},
			AssertDescription: "Cookie consent banner missing",
			AssertSeverity:    model.SeverityHigh,
		},
	},
}

// RulesFor returns the neutralization rules for a topic.
func RulesFor(topic model.Topic) []NeutralizationRule {
	return topicRules[topic]
}
