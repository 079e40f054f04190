package model

import "time"

// SocialPlatform identifies a social media platform.
type SocialPlatform string

// Supported social platforms.
const (
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformYouTube   SocialPlatform = "youtube"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformTikTok    SocialPlatform = "tiktok"
)

// AllSocialPlatforms returns every supported platform in a stable order.
func AllSocialPlatforms() []SocialPlatform {
	return []SocialPlatform{
		PlatformFacebook,
		PlatformInstagram,
		PlatformYouTube,
		PlatformLinkedIn,
		PlatformTikTok,
	}
}

// SocialProfile is the detected state of one social platform account.
type SocialProfile struct {
	// Exists is true if a profile was found for the business.
	Exists bool `json:"exists"`

	// Followers is the follower or subscriber count.
	Followers int `json:"followers"`

	// LastActivity is the recency label of the newest post as shown by
	// the platform, e.g. "heute", "today", "vor 3 Wochen", "2 months ago".
	// The social scorer maps it to a recency tier.
	LastActivity string `json:"last_activity,omitempty"`

	// URL is the profile URL.
	URL string `json:"url,omitempty"`
}

// KeywordRank is a search ranking position for one keyword.
type KeywordRank struct {
	// Keyword is the ranked search term.
	Keyword string `json:"keyword"`

	// Position is the 1-based ranking position.
	Position int `json:"position"`
}

// SearchFindings holds automated on-page search signals.
type SearchFindings struct {
	// Title is the page title of the start page.
	Title string `json:"title,omitempty"`

	// MetaDescription is the meta description of the start page.
	MetaDescription string `json:"meta_description,omitempty"`

	// H1Count is the number of H1 headings on the start page.
	H1Count int `json:"h1_count"`

	// StructuredData is true if schema.org markup was detected.
	StructuredData bool `json:"structured_data"`

	// OpeningHoursMarkup is true if opening hours markup was detected.
	OpeningHoursMarkup bool `json:"opening_hours_markup"`

	// GeoMetadata is true if geo meta tags were detected.
	GeoMetadata bool `json:"geo_metadata"`

	// RankedKeywords are the keyword positions measured for the business.
	RankedKeywords []KeywordRank `json:"ranked_keywords,omitempty"`
}

// PerformanceFindings holds measured page performance.
type PerformanceFindings struct {
	// LoadTimeMS is the measured page load time in milliseconds.
	LoadTimeMS int `json:"load_time_ms"`

	// MobileScore is the measured mobile usability score in [0,100].
	MobileScore int `json:"mobile_score"`
}

// ReviewFindings holds business-listing review data.
type ReviewFindings struct {
	// Rating is the average review rating on a 1-5 scale.
	Rating float64 `json:"rating"`

	// ReviewCount is the number of reviews.
	ReviewCount int `json:"review_count"`

	// ListingClaimed is true if the business listing has been claimed.
	ListingClaimed bool `json:"listing_claimed"`

	// ListingVerified is true if the business listing has been verified.
	ListingVerified bool `json:"listing_verified"`
}

// SecurityFindings holds transport security and server hygiene signals.
type SecurityFindings struct {
	// HasSSL is true if the site serves valid TLS.
	HasSSL bool `json:"has_ssl"`

	// HSTS is true if the Strict-Transport-Security header is set.
	HSTS bool `json:"hsts"`

	// CertExpiryDays is the number of days until certificate expiry.
	CertExpiryDays int `json:"cert_expiry_days"`

	// OutdatedServer is true if the server software is outdated.
	OutdatedServer bool `json:"outdated_server"`

	// SecurityHeaderCount is the number of recognized security headers.
	SecurityHeaderCount int `json:"security_header_count"`
}

// ExternalService is a third-party service embedded in the website.
type ExternalService struct {
	// Name identifies the service, e.g. "Google Fonts".
	Name string `json:"name"`

	// ThirdCountry is true if the service processes data outside the EU.
	ThirdCountry bool `json:"third_country"`
}

// PrivacyFindings holds automated data protection signals.
type PrivacyFindings struct {
	// TrackingScripts lists detected tracking script names.
	// Whether consent has been obtained for each is a manual fact.
	TrackingScripts []string `json:"tracking_scripts,omitempty"`

	// ExternalServices lists detected embedded third-party services.
	ExternalServices []ExternalService `json:"external_services,omitempty"`
}

// WorkplaceFindings holds employer review platform data.
type WorkplaceFindings struct {
	// Rating is the average employer rating on a 1-5 scale.
	Rating float64 `json:"rating"`

	// ReviewCount is the number of employer reviews.
	ReviewCount int `json:"review_count"`

	// ProfileClaimed is true if the employer profile has been claimed.
	ProfileClaimed bool `json:"profile_claimed"`
}

// BacklinkFindings holds inbound link profile measurements.
type BacklinkFindings struct {
	// Total is the total number of inbound links.
	Total int `json:"total"`

	// ReferringDomains is the number of unique referring domains.
	ReferringDomains int `json:"referring_domains"`

	// ToxicShare is the fraction of links classified as toxic, in [0,1].
	ToxicShare float64 `json:"toxic_share"`
}

// ContentFindings holds website content measurements.
type ContentFindings struct {
	// WordCount is the total word count across crawled pages.
	WordCount int `json:"word_count"`

	// ImageCount is the number of content images.
	ImageCount int `json:"image_count"`

	// PageCount is the number of distinct crawled pages.
	PageCount int `json:"page_count"`

	// HasBlog is true if a blog or news section was detected.
	HasBlog bool `json:"has_blog"`

	// LastUpdatedDays is the age of the newest content change in days.
	LastUpdatedDays int `json:"last_updated_days"`
}

// DirectoryListing is the state of one business directory entry.
type DirectoryListing struct {
	// Name identifies the directory.
	Name string `json:"name"`

	// Present is true if the business is listed.
	Present bool `json:"present"`

	// Complete is true if the listing carries full contact data.
	Complete bool `json:"complete"`

	// Verified is true if the listing has been verified.
	Verified bool `json:"verified"`
}

// RawFindings is the immutable snapshot of automated measurements for one
// analyzed business. It is produced once per analysis run by the collection
// pipeline and never mutated by the scoring engine: recomputation after a
// manual override changes is a full re-run over the same snapshot.
//
// Design decision: Optional measurement groups are pointers so that
// "detector did not run" is distinguishable from "detector ran and found
// nothing". Scorers treat a nil group as missing automated data.
type RawFindings struct {
	// Domain is the audited business domain.
	Domain string `json:"domain"`

	// DateCollected is when the snapshot was produced.
	DateCollected time.Time `json:"date_collected"`

	// === Website Measurements ===

	// Search holds on-page search signals.
	Search *SearchFindings `json:"search,omitempty"`

	// Performance holds page performance measurements.
	Performance *PerformanceFindings `json:"performance,omitempty"`

	// Content holds content measurements.
	Content *ContentFindings `json:"content,omitempty"`

	// Security holds transport security signals.
	Security *SecurityFindings `json:"security,omitempty"`

	// Privacy holds data protection signals.
	Privacy *PrivacyFindings `json:"privacy,omitempty"`

	// === Off-site Measurements ===

	// LocalSearchScore is an externally measured local search score in
	// [0,100], when the local-SEO measurement ran.
	LocalSearchScore *int `json:"local_search_score,omitempty"`

	// Social maps platforms to their detected profiles.
	Social map[SocialPlatform]SocialProfile `json:"social,omitempty"`

	// Reviews holds business-listing review data.
	Reviews *ReviewFindings `json:"reviews,omitempty"`

	// Workplace holds employer review platform data.
	Workplace *WorkplaceFindings `json:"workplace,omitempty"`

	// Backlinks holds inbound link measurements.
	Backlinks *BacklinkFindings `json:"backlinks,omitempty"`

	// Directories are the detected business directory listings.
	Directories []DirectoryListing `json:"directories,omitempty"`

	// RegionalRates are the regional average hourly rates per tier,
	// from market data.
	RegionalRates map[RateTier]float64 `json:"regional_rates,omitempty"`

	// Competitors lists detected competitor domains.
	Competitors []string `json:"competitors,omitempty"`

	// === Violations ===

	// Violations are the automatically detected violations per topic.
	Violations map[Topic][]Violation `json:"violations,omitempty"`
}

// ViolationsFor returns the detected violations for a topic.
// Safe to call on a nil receiver.
func (r *RawFindings) ViolationsFor(topic Topic) []Violation {
	if r == nil {
		return nil
	}
	return r.Violations[topic]
}
