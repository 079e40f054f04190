package scoring

import (
	"unicode/utf8"

	"github.com/webfacts/presencescore/internal/model"
)

// ScoreSearchOptimization scores on-page search signals and page
// performance. Automated component budget: title 15, meta description 15,
// heading structure 10, keyword rankings 15, mobile usability 25, load
// time 20. The manual side is the reviewer's on-page rating.
func ScoreSearchOptimization(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	var manual model.Score = model.NoData()
	if o != nil && o.Search != nil {
		manual = percentScore(o.Search.OnPageRating)
	}
	return blend(seoAutoScore(raw), manual)
}

func seoAutoScore(raw *model.RawFindings) model.Score {
	if raw == nil || (raw.Search == nil && raw.Performance == nil) {
		return model.NoData()
	}

	points := 0.0
	if s := raw.Search; s != nil {
		points += lengthPoints(s.Title, 30, 65, 15)
		points += lengthPoints(s.MetaDescription, 80, 165, 15)
		switch {
		case s.H1Count == 1:
			points += 10
		case s.H1Count > 1:
			points += 5
		}
		points += keywordPoints(s.RankedKeywords)
	}
	if p := raw.Performance; p != nil {
		mobile := p.MobileScore
		if mobile > 100 {
			mobile = 100
		}
		if mobile > 0 {
			points += float64(mobile) * 0.25
		}
		points += loadTimePoints(p.LoadTimeMS)
	}
	return model.NewScoreFromFloat(points)
}

// lengthPoints awards full points for text within the length window and
// roughly half for text that exists but misses the window.
func lengthPoints(text string, minLen, maxLen int, full float64) float64 {
	n := utf8.RuneCountInString(text)
	switch {
	case n == 0:
		return 0
	case n >= minLen && n <= maxLen:
		return full
	default:
		return full / 2
	}
}

// keywordPoints awards 3 points per top-3 ranking, 2 per first-page
// ranking, and 1 per second-page ranking, capped at 15.
func keywordPoints(ranked []model.KeywordRank) float64 {
	points := 0.0
	for _, kw := range ranked {
		switch {
		case kw.Position <= 0:
			continue
		case kw.Position <= 3:
			points += 3
		case kw.Position <= 10:
			points += 2
		case kw.Position <= 20:
			points += 1
		}
	}
	if points > 15 {
		points = 15
	}
	return points
}

func loadTimePoints(ms int) float64 {
	switch {
	case ms <= 0:
		return 0
	case ms < 1500:
		return 20
	case ms < 2500:
		return 15
	case ms < 4000:
		return 8
	default:
		return 0
	}
}
