package scoring

import "github.com/webfacts/presencescore/internal/model"

// ScoreBacklinks scores the inbound link profile. Referring domain
// diversity weighs more than raw link volume; a thousand links from one
// domain say less than fifty links from fifty. Automated component
// budget: referring domains 50, total links 20, toxicity 30. The manual
// side is the reviewer's 1-5 link profile rating.
func ScoreBacklinks(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	var manual model.Score = model.NoData()
	if o != nil && o.Backlinks != nil {
		manual = ratingScore(o.Backlinks.QualityRating)
	}
	return blend(backlinkAutoScore(raw), manual)
}

func backlinkAutoScore(raw *model.RawFindings) model.Score {
	if raw == nil || raw.Backlinks == nil {
		return model.NoData()
	}
	b := raw.Backlinks

	points := 0.0
	switch {
	case b.ReferringDomains >= 500:
		points += 50
	case b.ReferringDomains >= 100:
		points += 40
	case b.ReferringDomains >= 50:
		points += 30
	case b.ReferringDomains >= 10:
		points += 18
	case b.ReferringDomains > 0:
		points += 8
	}
	switch {
	case b.Total >= 1000:
		points += 20
	case b.Total >= 200:
		points += 15
	case b.Total >= 50:
		points += 10
	case b.Total > 0:
		points += 5
	}

	toxic := sanitize("toxic_share", b.ToxicShare)
	if toxic > 1 {
		toxic = 1
	}
	points += (1 - toxic) * 30
	return model.NewScoreFromFloat(points)
}
