package model

// Topic is a single scored concern of the audited business.
type Topic string

// All scored topics. The string values are stable identifiers used in
// snapshots, the history database, and diagnostic records.
const (
	// TopicSearchOptimization covers on-page search engine signals.
	TopicSearchOptimization Topic = "search_optimization"

	// TopicLocalPresence covers directory listings, the business listing,
	// identifier consistency, and local keyword rankings.
	TopicLocalPresence Topic = "local_presence"

	// TopicContentQuality covers website content depth and freshness.
	TopicContentQuality Topic = "content_quality"

	// TopicBacklinks covers the inbound link profile.
	TopicBacklinks Topic = "backlinks"

	// TopicAccessibility covers accessibility compliance.
	TopicAccessibility Topic = "accessibility"

	// TopicDataPrivacy covers data protection compliance.
	TopicDataPrivacy Topic = "data_privacy"

	// TopicTechnicalSecurity covers transport security and server hygiene.
	TopicTechnicalSecurity Topic = "technical_security"

	// TopicSocialPresence covers social platform presence and activity.
	TopicSocialPresence Topic = "social_presence"

	// TopicWorkplaceReputation covers employer review platforms.
	TopicWorkplaceReputation Topic = "workplace_reputation"

	// TopicStaffQualification covers staff headcounts and certifications.
	TopicStaffQualification Topic = "staff_qualification"

	// TopicQuoteResponse covers how the business answers quote requests.
	TopicQuoteResponse Topic = "quote_response"

	// TopicHourlyRates covers rate positioning against the regional average.
	TopicHourlyRates Topic = "hourly_rates"

	// TopicCorporateIdentity covers brand consistency.
	TopicCorporateIdentity Topic = "corporate_identity"
)

// Category is one of the six higher-level groupings shown to the end user.
type Category string

// All score categories.
const (
	// CategoryFindability groups topics about being found online.
	CategoryFindability Category = "findability"

	// CategoryWebsiteQuality groups website content and usability topics.
	CategoryWebsiteQuality Category = "website_quality"

	// CategoryLegalPrivacy groups compliance topics.
	CategoryLegalPrivacy Category = "legal_privacy"

	// CategorySocialMedia groups social platform topics.
	CategorySocialMedia Category = "social_media"

	// CategoryReputation groups reputation and service topics.
	CategoryReputation Category = "reputation"

	// CategoryCorporateAppearance groups brand, staff, and pricing topics.
	CategoryCorporateAppearance Category = "corporate_appearance"
)

// topicCategories maps every topic to its category. The mapping is fixed;
// aggregation weights are configurable but membership is not.
var topicCategories = map[Topic]Category{
	TopicSearchOptimization:  CategoryFindability,
	TopicLocalPresence:       CategoryFindability,
	TopicBacklinks:           CategoryFindability,
	TopicContentQuality:      CategoryWebsiteQuality,
	TopicAccessibility:       CategoryWebsiteQuality,
	TopicDataPrivacy:         CategoryLegalPrivacy,
	TopicTechnicalSecurity:   CategoryLegalPrivacy,
	TopicSocialPresence:      CategorySocialMedia,
	TopicWorkplaceReputation: CategoryReputation,
	TopicQuoteResponse:       CategoryReputation,
	TopicStaffQualification:  CategoryCorporateAppearance,
	TopicHourlyRates:         CategoryCorporateAppearance,
	TopicCorporateIdentity:   CategoryCorporateAppearance,
}

// topicDisplayNames holds human-readable topic titles for reports.
var topicDisplayNames = map[Topic]string{
	TopicSearchOptimization:  "Search Optimization",
	TopicLocalPresence:       "Local Presence",
	TopicContentQuality:      "Content Quality",
	TopicBacklinks:           "Backlinks",
	TopicAccessibility:       "Accessibility",
	TopicDataPrivacy:         "Data Privacy",
	TopicTechnicalSecurity:   "Technical Security",
	TopicSocialPresence:      "Social Media Presence",
	TopicWorkplaceReputation: "Workplace Reputation",
	TopicStaffQualification:  "Staff Qualification",
	TopicQuoteResponse:       "Quote Response",
	TopicHourlyRates:         "Hourly Rate Positioning",
	TopicCorporateIdentity:   "Corporate Identity",
}

// categoryDisplayNames holds human-readable category titles for reports.
var categoryDisplayNames = map[Category]string{
	CategoryFindability:         "Findability",
	CategoryWebsiteQuality:      "Website Quality",
	CategoryLegalPrivacy:        "Legal & Data Privacy",
	CategorySocialMedia:         "Social Media",
	CategoryReputation:          "Reputation",
	CategoryCorporateAppearance: "Corporate Appearance",
}

// Category returns the category the topic belongs to.
func (t Topic) Category() Category {
	return topicCategories[t]
}

// DisplayName returns the human-readable topic title.
func (t Topic) DisplayName() string {
	if name, ok := topicDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

// DisplayName returns the human-readable category title.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// AllTopics returns every topic in a stable order.
// The order matters for deterministic reports and fan-out result slots.
func AllTopics() []Topic {
	return []Topic{
		TopicSearchOptimization,
		TopicLocalPresence,
		TopicContentQuality,
		TopicBacklinks,
		TopicAccessibility,
		TopicDataPrivacy,
		TopicTechnicalSecurity,
		TopicSocialPresence,
		TopicWorkplaceReputation,
		TopicStaffQualification,
		TopicQuoteResponse,
		TopicHourlyRates,
		TopicCorporateIdentity,
	}
}

// AllCategories returns every category in a stable display order.
func AllCategories() []Category {
	return []Category{
		CategoryFindability,
		CategoryWebsiteQuality,
		CategoryLegalPrivacy,
		CategorySocialMedia,
		CategoryReputation,
		CategoryCorporateAppearance,
	}
}

// TopicsInCategory returns the topics belonging to a category,
// in AllTopics order.
func TopicsInCategory(c Category) []Topic {
	topics := make([]Topic, 0, 3)
	for _, t := range AllTopics() {
		if t.Category() == c {
			topics = append(topics, t)
		}
	}
	return topics
}
