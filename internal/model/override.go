package model

// Tri-state convention: manual override fields are pointers. A nil pointer
// means the reviewer expressed no opinion, a non-nil pointer is an explicit
// confirmation or denial. Explicit denials can add violations (see the
// registry package); automated evidence never overrides an explicit manual
// "false".

// Ptr returns a pointer to v. Convenience for building override records.
func Ptr[T any](v T) *T {
	return &v
}

// RateTier identifies an hourly rate tier.
type RateTier string

// Hourly rate tiers.
const (
	RateTierHelper     RateTier = "helper"
	RateTierJourneyman RateTier = "journeyman"
	RateTierMaster     RateTier = "master"
)

// ResponseTime classifies how quickly a quote request was answered.
type ResponseTime string

// Quote response time classes, from worst to best.
const (
	// ResponseNone means no response was ever given. This short-circuits
	// the quote-response score to 10 regardless of other inputs.
	ResponseNone ResponseTime = "no_response"

	// ResponseOver2Days means the response took more than two days,
	// short-circuiting the score to 15.
	ResponseOver2Days ResponseTime = "over_2_days"

	ResponseWithin2Days ResponseTime = "within_2_days"
	ResponseWithin1Day  ResponseTime = "within_1_day"
	ResponseWithin4h    ResponseTime = "within_4_hours"
	ResponseWithin1h    ResponseTime = "within_1_hour"
)

// ResponseQuality classifies the content quality of a quote response.
type ResponseQuality string

// Quote response quality classes.
const (
	QualityExcellent ResponseQuality = "excellent"
	QualityGood      ResponseQuality = "good"
	QualityAverage   ResponseQuality = "average"
	QualityPoor      ResponseQuality = "poor"
)

// ContactChannel identifies an offered contact channel type.
type ContactChannel string

// Contact channel types.
const (
	ChannelPhone    ContactChannel = "phone"
	ChannelEmail    ContactChannel = "email"
	ChannelForm     ContactChannel = "form"
	ChannelChat     ContactChannel = "chat"
	ChannelWhatsApp ContactChannel = "whatsapp"
	ChannelSocial   ContactChannel = "social"
)

// ChecklistItem is a single reviewer checklist entry.
type ChecklistItem struct {
	// Name identifies the checklist entry.
	Name string `json:"name"`

	// Checked is the tri-state reviewer answer.
	Checked *bool `json:"checked,omitempty"`
}

// ChecklistRatio returns the fraction of confirmed items and whether the
// checklist carries any reviewer answer at all. Unanswered items count as
// unconfirmed once at least one item was answered.
func ChecklistRatio(items []ChecklistItem) (float64, bool) {
	if len(items) == 0 {
		return 0, false
	}
	answered := false
	confirmed := 0
	for _, item := range items {
		if item.Checked == nil {
			continue
		}
		answered = true
		if *item.Checked {
			confirmed++
		}
	}
	if !answered {
		return 0, false
	}
	return float64(confirmed) / float64(len(items)), true
}

// SearchOverride is the reviewer input for search optimization.
type SearchOverride struct {
	// OnPageRating is a manual on-page quality rating in [0,100].
	OnPageRating *int `json:"on_page_rating,omitempty"`
}

// LocalOverride is the reviewer input for local presence.
type LocalOverride struct {
	// Directories replace or extend the detected directory listings.
	Directories []DirectoryListing `json:"directories,omitempty"`

	// ListingClaimed confirms or denies the business listing claim.
	ListingClaimed *bool `json:"listing_claimed,omitempty"`

	// ListingVerified confirms or denies business listing verification.
	ListingVerified *bool `json:"listing_verified,omitempty"`

	// NAPConsistency rates name/address/phone consistency on a 1-5 scale.
	NAPConsistency *int `json:"nap_consistency,omitempty"`
}

// ContentOverride is the reviewer input for content quality.
type ContentOverride struct {
	// QualityRating is a manual content rating on a 1-5 scale.
	QualityRating *int `json:"quality_rating,omitempty"`
}

// BacklinkOverride is the reviewer input for the backlink profile.
type BacklinkOverride struct {
	// QualityRating is a manual link profile rating on a 1-5 scale.
	QualityRating *int `json:"quality_rating,omitempty"`
}

// AccessibilityOverride is the reviewer accessibility checklist.
// Explicit true answers neutralize matching detected violations; explicit
// false answers add violations even when automated detection found nothing.
type AccessibilityOverride struct {
	AltTextsPresent    *bool `json:"alt_texts_present,omitempty"`
	ContrastSufficient *bool `json:"contrast_sufficient,omitempty"`
	KeyboardNavigable  *bool `json:"keyboard_navigable,omitempty"`
	AriaLabelsPresent  *bool `json:"aria_labels_present,omitempty"`
	FontScalable       *bool `json:"font_scalable,omitempty"`

	// OverallRating is a manual overall accessibility rating in [0,100].
	OverallRating *int `json:"overall_rating,omitempty"`
}

// PrivacyOverride is the reviewer input for data protection compliance.
type PrivacyOverride struct {
	PrivacyPolicyPresent *bool `json:"privacy_policy_present,omitempty"`
	ImprintPresent       *bool `json:"imprint_present,omitempty"`
	CookieConsentBanner  *bool `json:"cookie_consent_banner,omitempty"`

	// ProcessingRegister confirms the processing activities register.
	ProcessingRegister *bool `json:"processing_register,omitempty"`

	// DataProtectionOfficer confirms a DPO is appointed.
	DataProtectionOfficer *bool `json:"data_protection_officer,omitempty"`

	// ThirdCountryTransfer confirms whether data leaves the EU.
	ThirdCountryTransfer *bool `json:"third_country_transfer,omitempty"`

	// TransferDocumented confirms transfer safeguards are documented.
	// Only meaningful when ThirdCountryTransfer is true.
	TransferDocumented *bool `json:"transfer_documented,omitempty"`

	// TrackingConsent maps detected tracking script names to whether
	// required consent is obtained.
	TrackingConsent map[string]*bool `json:"tracking_consent,omitempty"`

	// ProcessingAgreements maps external service names to whether a data
	// processing agreement is in place.
	ProcessingAgreements map[string]*bool `json:"processing_agreements,omitempty"`
}

// ConsentFor returns the consent answer for a tracking script, nil if the
// reviewer has not answered. Safe to call on a nil receiver.
func (p *PrivacyOverride) ConsentFor(script string) *bool {
	if p == nil {
		return nil
	}
	return p.TrackingConsent[script]
}

// AgreementFor returns the processing agreement answer for an external
// service, nil if the reviewer has not answered. Safe to call on a nil
// receiver.
func (p *PrivacyOverride) AgreementFor(service string) *bool {
	if p == nil {
		return nil
	}
	return p.ProcessingAgreements[service]
}

// SecurityOverride is the reviewer input for technical security.
type SecurityOverride struct {
	HasSSL         *bool `json:"has_ssl,omitempty"`
	HSTS           *bool `json:"hsts,omitempty"`
	UpToDateServer *bool `json:"up_to_date_server,omitempty"`
}

// SocialOverride is the reviewer input for one social platform.
type SocialOverride struct {
	// Exists confirms or denies the profile. An explicit false removes
	// the platform from scoring even when detection found a profile.
	Exists *bool `json:"exists,omitempty"`

	// Followers replaces the detected follower count.
	Followers *int `json:"followers,omitempty"`

	// LastActivity replaces the detected recency label.
	LastActivity string `json:"last_activity,omitempty"`

	// URL is the confirmed profile URL.
	URL string `json:"url,omitempty"`
}

// WorkplaceOverride is the reviewer input for workplace reputation.
type WorkplaceOverride struct {
	// Rating replaces the detected employer rating (1-5 scale).
	Rating *float64 `json:"rating,omitempty"`

	// ReviewCount replaces the detected employer review count.
	ReviewCount *int `json:"review_count,omitempty"`

	// ProfileClaimed confirms or denies the employer profile claim.
	ProfileClaimed *bool `json:"profile_claimed,omitempty"`
}

// StaffOverride is the reviewer input for staff qualification.
// This topic has no automated source; all data is reviewer-entered.
type StaffOverride struct {
	// Masters is the number of staff with a master qualification.
	Masters *int `json:"masters,omitempty"`

	// Skilled is the number of skilled workers.
	Skilled *int `json:"skilled,omitempty"`

	// Office is the number of office staff.
	Office *int `json:"office,omitempty"`

	// TotalHeadcount is the total number of employees.
	TotalHeadcount *int `json:"total_headcount,omitempty"`

	// Certifications is the company certification checklist.
	Certifications []ChecklistItem `json:"certifications,omitempty"`

	// DomainQualifications is the trade-specific qualification checklist.
	DomainQualifications []ChecklistItem `json:"domain_qualifications,omitempty"`

	// TrainingProgram confirms an apprenticeship or training program.
	TrainingProgram *bool `json:"training_program,omitempty"`

	// EmployeeCertificates is the number of individual employee
	// certificates on file.
	EmployeeCertificates *int `json:"employee_certificates,omitempty"`
}

// QuoteOverride is the reviewer input for quote-response behavior.
type QuoteOverride struct {
	// ResponseTime classifies how fast the quote request was answered.
	ResponseTime ResponseTime `json:"response_time,omitempty"`

	// Channels lists the offered contact channel types.
	Channels []ContactChannel `json:"channels,omitempty"`

	// Quality classifies the response content quality.
	Quality ResponseQuality `json:"quality,omitempty"`
}

// RatesOverride is the reviewer input for hourly rate positioning.
type RatesOverride struct {
	// OwnRates are the business's hourly rates per tier.
	OwnRates map[RateTier]float64 `json:"own_rates,omitempty"`

	// RegionalRates replace the market-data regional averages.
	RegionalRates map[RateTier]float64 `json:"regional_rates,omitempty"`
}

// IdentityOverride is the reviewer corporate identity checklist.
type IdentityOverride struct {
	LogoConsistent        *bool `json:"logo_consistent,omitempty"`
	ColorSchemeConsistent *bool `json:"color_scheme_consistent,omitempty"`
	TypographyConsistent  *bool `json:"typography_consistent,omitempty"`
	ImageryConsistent     *bool `json:"imagery_consistent,omitempty"`
	SloganPresent         *bool `json:"slogan_present,omitempty"`

	// OverallRating is a manual overall identity rating in [0,100].
	OverallRating *int `json:"overall_rating,omitempty"`
}

// ManualOverrides bundles all reviewer input for one analysis.
// Every field may be absent; the engine treats absent topics as
// "no manual data" and falls back to automated findings alone.
type ManualOverrides struct {
	Search        *SearchOverride        `json:"search,omitempty"`
	Local         *LocalOverride         `json:"local,omitempty"`
	Content       *ContentOverride       `json:"content,omitempty"`
	Backlinks     *BacklinkOverride      `json:"backlinks,omitempty"`
	Accessibility *AccessibilityOverride `json:"accessibility,omitempty"`
	Privacy       *PrivacyOverride       `json:"privacy,omitempty"`
	Security      *SecurityOverride      `json:"security,omitempty"`

	// Social maps platforms to their reviewer corrections.
	Social map[SocialPlatform]*SocialOverride `json:"social,omitempty"`

	Workplace *WorkplaceOverride `json:"workplace,omitempty"`
	Staff     *StaffOverride     `json:"staff,omitempty"`
	Quote     *QuoteOverride     `json:"quote,omitempty"`
	Rates     *RatesOverride     `json:"rates,omitempty"`
	Identity  *IdentityOverride  `json:"identity,omitempty"`

	// CustomViolations are reviewer-added violations.
	CustomViolations []Violation `json:"custom_violations,omitempty"`

	// Suppressed lists violation IDs the reviewer excluded from scoring
	// without disputing their truth.
	Suppressed []ViolationID `json:"suppressed,omitempty"`

	// ReviewedCategories lists categories the reviewer has signed off.
	// The export gate refuses to produce a customer-facing artifact
	// while any category with data remains unreviewed.
	ReviewedCategories []Category `json:"reviewed_categories,omitempty"`
}

// IsSuppressed reports whether the reviewer suppressed the given violation.
// Safe to call on a nil receiver.
func (m *ManualOverrides) IsSuppressed(id ViolationID) bool {
	if m == nil {
		return false
	}
	for _, s := range m.Suppressed {
		if s == id {
			return true
		}
	}
	return false
}

// IsReviewed reports whether the reviewer signed off the given category.
// Safe to call on a nil receiver.
func (m *ManualOverrides) IsReviewed(c Category) bool {
	if m == nil {
		return false
	}
	for _, rc := range m.ReviewedCategories {
		if rc == c {
			return true
		}
	}
	return false
}

// CustomViolationsFor returns the reviewer-added violations for a topic.
// Safe to call on a nil receiver.
func (m *ManualOverrides) CustomViolationsFor(topic Topic) []Violation {
	if m == nil {
		return nil
	}
	var out []Violation
	for _, v := range m.CustomViolations {
		if v.Topic == topic {
			out = append(out, v)
		}
	}
	return out
}
