package scoring

import "github.com/webfacts/presencescore/internal/model"

// ScoreContentQuality scores website content depth and freshness.
// Automated component budget: word count 25, images 15, page count 15,
// blog 20, freshness 25. The manual side is the reviewer's 1-5 content
// quality rating.
func ScoreContentQuality(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	var manual model.Score = model.NoData()
	if o != nil && o.Content != nil {
		manual = ratingScore(o.Content.QualityRating)
	}
	return blend(contentAutoScore(raw), manual)
}

func contentAutoScore(raw *model.RawFindings) model.Score {
	if raw == nil || raw.Content == nil {
		return model.NoData()
	}
	c := raw.Content

	points := 0.0
	switch {
	case c.WordCount >= 1500:
		points += 25
	case c.WordCount >= 800:
		points += 18
	case c.WordCount >= 300:
		points += 10
	case c.WordCount > 0:
		points += 4
	}
	switch {
	case c.ImageCount >= 10:
		points += 15
	case c.ImageCount >= 5:
		points += 10
	case c.ImageCount >= 1:
		points += 5
	}
	switch {
	case c.PageCount >= 15:
		points += 15
	case c.PageCount >= 8:
		points += 10
	case c.PageCount >= 4:
		points += 5
	}
	if c.HasBlog {
		points += 20
	}
	points += freshnessPoints(c.LastUpdatedDays)
	return model.NewScoreFromFloat(points)
}

func freshnessPoints(days int) float64 {
	switch {
	case days < 0:
		return 0
	case days <= 30:
		return 25
	case days <= 90:
		return 18
	case days <= 180:
		return 10
	case days <= 365:
		return 5
	default:
		return 0
	}
}
