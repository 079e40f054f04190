package scoring

import "github.com/webfacts/presencescore/internal/model"

// Cap tiers for active critical/high violations. The thresholds model
// escalating regulatory risk: one unresolved critical issue caps a topic
// below the "good" threshold, three or more below the "acceptable" one.
// These values are calibrated; preserve them exactly.
const (
	capOneActive   = 59
	capTwoActive   = 35
	capThreeActive = 20
)

// CapForCount returns the maximum achievable score for a topic with k
// active (counted) violations. Negative counts are treated as zero.
func CapForCount(k int) int {
	switch {
	case k <= 0:
		return 100
	case k == 1:
		return capOneActive
	case k == 2:
		return capTwoActive
	default:
		return capThreeActive
	}
}

// ApplyCap clamps a pre-cap score by the active violation count.
// Capping only ever lowers a score, and a NoData score stays NoData.
func ApplyCap(pre model.Score, k int) model.Score {
	if pre.IsNoData() {
		return pre
	}
	return pre.Min(model.NewScore(CapForCount(k)))
}
