package scoring

import (
	"math"

	"github.com/webfacts/presencescore/internal/model"
)

// Rate positioning bands. A business pricing at or above 110% of the
// regional average signals confident market positioning and scores in
// the top band; pricing far below the average signals a race to the
// bottom and is scored down, not up.
const (
	ratesPremiumFloor = 1.10
	ratesMarketFloor  = 0.90
)

// ScoreHourlyRates scores the business's hourly rates against the regional
// average. Own rates always come from the reviewer; regional averages come
// from market data unless the reviewer replaced them. The comparison uses
// only tiers present on both sides so that a business without a master
// tier is not compared against master-tier market rates.
func ScoreHourlyRates(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	if o == nil || o.Rates == nil || len(o.Rates.OwnRates) == 0 {
		return model.NoData()
	}
	regional := o.Rates.RegionalRates
	if len(regional) == 0 && raw != nil {
		regional = raw.RegionalRates
	}
	if len(regional) == 0 {
		return model.NoData()
	}

	ownSum, regSum := 0.0, 0.0
	shared := 0
	for tier, own := range o.Rates.OwnRates {
		reg, ok := regional[tier]
		if !ok {
			continue
		}
		own = sanitize("own_rate_"+string(tier), own)
		reg = sanitize("regional_rate_"+string(tier), reg)
		if own <= 0 || reg <= 0 {
			continue
		}
		ownSum += own
		regSum += reg
		shared++
	}
	if shared == 0 || regSum == 0 {
		return model.NoData()
	}

	return ratioScore(ownSum / regSum)
}

// ratioScore maps the own-to-regional rate ratio to a score band:
// premium pricing lands in [85,100], market-level pricing in [60,84],
// below-market pricing in [40,59].
func ratioScore(ratio float64) model.Score {
	switch {
	case ratio >= ratesPremiumFloor:
		bonus := math.Round((ratio - ratesPremiumFloor) * 100)
		if bonus > 15 {
			bonus = 15
		}
		return model.NewScoreFromFloat(85 + bonus)
	case ratio >= ratesMarketFloor:
		span := (ratio - ratesMarketFloor) / (ratesPremiumFloor - ratesMarketFloor)
		points := 60 + span*24
		if points > 84 {
			points = 84
		}
		return model.NewScoreFromFloat(points)
	default:
		span := (ratio - 0.50) / 0.40
		if span < 0 {
			span = 0
		}
		points := 40 + span*19
		if points > 59 {
			points = 59
		}
		return model.NewScoreFromFloat(points)
	}
}
