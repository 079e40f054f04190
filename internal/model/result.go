package model

import "time"

// TopicScore is the scored result for one topic.
type TopicScore struct {
	// Topic identifies the scored concern.
	Topic Topic `json:"topic"`

	// Score is the effective (post-cap) score, or NoData.
	Score Score `json:"score"`
}

// CategoryScore is the aggregated result for one category.
type CategoryScore struct {
	// Category identifies the grouping.
	Category Category `json:"category"`

	// Score is the weighted mean over the category's topics with data,
	// or NoData when no member topic has data.
	Score Score `json:"score"`

	// EffectiveWeight is the weight this category actually carried in the
	// overall score after redistribution of NoData categories. Recorded
	// for auditability; zero when the category itself had no data.
	EffectiveWeight float64 `json:"effective_weight"`
}

// OverallScore is the final aggregated score.
type OverallScore struct {
	// Score is the redistributed weighted mean over categories with data.
	// NoData only when no category has data.
	Score Score `json:"score"`

	// EffectiveWeights records the redistributed weight per category that
	// was actually used. Sums to the original total for categories with
	// data; empty when nothing had data.
	EffectiveWeights map[Category]float64 `json:"effective_weights,omitempty"`
}

// AnalysisResult is the complete score tree for one analysis run.
// It is computed once per snapshot and passed explicitly to every consumer
// (report writers, history storage); nothing reads scores from shared state.
type AnalysisResult struct {
	// Domain is the audited business domain.
	Domain string `json:"domain"`

	// DateScored is when the engine produced this result.
	DateScored time.Time `json:"date_scored"`

	// Topics holds one entry per topic in AllTopics order.
	Topics []TopicScore `json:"topics"`

	// Categories holds one entry per category in AllCategories order.
	Categories []CategoryScore `json:"categories"`

	// Overall is the final aggregate.
	Overall OverallScore `json:"overall"`

	// Violations is the full audit list across all topics, including
	// neutralized and suppressed entries.
	Violations []ViolationStatus `json:"violations,omitempty"`

	// ReviewedCategories records which categories the reviewer signed off
	// at scoring time. Consumed by the export gate.
	ReviewedCategories []Category `json:"reviewed_categories,omitempty"`
}

// TopicScoreFor returns the score for a topic, or NoData if absent.
func (r *AnalysisResult) TopicScoreFor(topic Topic) Score {
	for _, ts := range r.Topics {
		if ts.Topic == topic {
			return ts.Score
		}
	}
	return NoData()
}

// CategoryScoreFor returns the score entry for a category.
// The second return value is false if the category is absent.
func (r *AnalysisResult) CategoryScoreFor(c Category) (CategoryScore, bool) {
	for _, cs := range r.Categories {
		if cs.Category == c {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// SeverityCounts returns the number of violations per severity on the
// audit list, keyed by severity. Invalid severities are not counted.
func (r *AnalysisResult) SeverityCounts() map[Severity]int {
	counts := make(map[Severity]int)
	for _, vs := range r.Violations {
		if vs.Violation.Severity.Valid() {
			counts[vs.Violation.Severity]++
		}
	}
	return counts
}

// ActiveViolationCount returns the number of violations that count toward
// a cap somewhere in the result.
func (r *AnalysisResult) ActiveViolationCount() int {
	n := 0
	for _, vs := range r.Violations {
		if vs.CountsTowardCap {
			n++
		}
	}
	return n
}

// HasUnresolvedCritical reports whether any counted violation is critical.
func (r *AnalysisResult) HasUnresolvedCritical() bool {
	for _, vs := range r.Violations {
		if vs.CountsTowardCap && vs.Violation.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// IsReviewed reports whether the given category was signed off.
func (r *AnalysisResult) IsReviewed(c Category) bool {
	for _, rc := range r.ReviewedCategories {
		if rc == c {
			return true
		}
	}
	return false
}

// UnreviewedCategories returns the categories that have data but were not
// signed off by a reviewer, in display order.
func (r *AnalysisResult) UnreviewedCategories() []Category {
	var out []Category
	for _, cs := range r.Categories {
		if cs.Score.IsNoData() {
			continue
		}
		if !r.IsReviewed(cs.Category) {
			out = append(out, cs.Category)
		}
	}
	return out
}
