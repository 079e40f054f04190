package scoring

import (
	"log/slog"
	"math"

	"github.com/webfacts/presencescore/internal/model"
)

// Blend ratio for topics with both automated and manual data.
// Automated measurements form the objective baseline; manual review is the
// correction layer on top.
const (
	autoBlendWeight   = 0.6
	manualBlendWeight = 0.4
)

// blend reconciles an automated and a manual score.
// One-sided data passes through unchanged; two-sided data is combined with
// the fixed 60/40 ratio; no data on either side stays NoData.
func blend(auto, manual model.Score) model.Score {
	autoVal, autoOK := auto.ValueOK()
	manualVal, manualOK := manual.ValueOK()
	switch {
	case autoOK && manualOK:
		return model.NewScoreFromFloat(autoBlendWeight*float64(autoVal) + manualBlendWeight*float64(manualVal))
	case autoOK:
		return auto
	case manualOK:
		return manual
	default:
		return model.NoData()
	}
}

// sanitize guards a raw numeric input against NaN, infinities, and
// negative values. Malformed input becomes 0 with a logged warning; the
// engine must always produce a displayable result.
func sanitize(name string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		slog.Warn("malformed numeric input sanitized to 0", "input", name)
		return 0
	}
	if v < 0 {
		slog.Warn("negative numeric input sanitized to 0", "input", name, "value", v)
		return 0
	}
	return v
}

// ratingScore converts a 1-5 reviewer rating into a 0-100 score.
// Nil or out-of-range ratings yield NoData.
func ratingScore(rating *int) model.Score {
	if rating == nil {
		return model.NoData()
	}
	r := *rating
	if r < 1 {
		return model.NoData()
	}
	if r > 5 {
		r = 5
	}
	return model.NewScoreFromFloat(float64(r) / 5 * 100)
}

// percentScore converts a 0-100 reviewer rating into a Score.
// Nil yields NoData; the constructor clamps out-of-range values.
func percentScore(rating *int) model.Score {
	if rating == nil {
		return model.NoData()
	}
	return model.NewScore(*rating)
}
