package scoring

import "github.com/webfacts/presencescore/internal/model"

// ScoreWorkplaceReputation scores employer review platform presence.
// Component budget on both sides: rating 70, review volume 20, claimed
// profile 10.
func ScoreWorkplaceReputation(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	return blend(workplaceAutoScore(raw), workplaceManualScore(o))
}

func workplaceAutoScore(raw *model.RawFindings) model.Score {
	if raw == nil || raw.Workplace == nil {
		return model.NoData()
	}
	w := raw.Workplace

	points := employerRatingPoints(sanitize("workplace_rating", w.Rating))
	points += reviewVolumePoints(w.ReviewCount)
	if w.ProfileClaimed {
		points += 10
	}
	return model.NewScoreFromFloat(points)
}

func workplaceManualScore(o *model.ManualOverrides) model.Score {
	if o == nil || o.Workplace == nil {
		return model.NoData()
	}
	w := o.Workplace
	if w.Rating == nil && w.ReviewCount == nil && w.ProfileClaimed == nil {
		return model.NoData()
	}

	points := 0.0
	if w.Rating != nil {
		points += employerRatingPoints(sanitize("workplace_rating_manual", *w.Rating))
	}
	if w.ReviewCount != nil {
		points += reviewVolumePoints(*w.ReviewCount)
	}
	if confirmed(w.ProfileClaimed) {
		points += 10
	}
	return model.NewScoreFromFloat(points)
}

// employerRatingPoints maps a 1-5 employer rating to up to 70 points.
func employerRatingPoints(rating float64) float64 {
	if rating > 5 {
		rating = 5
	}
	return rating / 5 * 70
}

func reviewVolumePoints(count int) float64 {
	switch {
	case count >= 50:
		return 20
	case count >= 20:
		return 15
	case count >= 10:
		return 10
	case count >= 3:
		return 5
	case count > 0:
		return 2
	default:
		return 0
	}
}
