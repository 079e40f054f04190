// Package aggregate rolls topic scores up into category and overall
// scores. Topics without data are excluded from their category mean and
// categories without data hand their weight to the remaining categories,
// so missing measurements never drag an average toward zero.
package aggregate

import (
	"github.com/webfacts/presencescore/internal/model"
)

// Category computes the weighted mean over the category's member topics
// that have data. Weights of absent topics are excluded from the
// denominator; a category whose members all lack data scores NoData.
// The returned EffectiveWeight is zero until Overall assigns one.
func Category(c model.Category, topicScores map[model.Topic]model.Score, topicWeights map[model.Topic]float64) model.CategoryScore {
	sum, weightSum := 0.0, 0.0
	for _, topic := range model.TopicsInCategory(c) {
		value, ok := topicScores[topic].ValueOK()
		if !ok {
			continue
		}
		w := topicWeights[topic]
		if w <= 0 {
			continue
		}
		sum += float64(value) * w
		weightSum += w
	}
	if weightSum == 0 {
		return model.CategoryScore{Category: c, Score: model.NoData()}
	}
	return model.CategoryScore{
		Category: c,
		Score:    model.NewScoreFromFloat(sum / weightSum),
	}
}

// Overall computes the final score from category scores and base category
// weights. The weight of each NoData category is redistributed evenly
// across the categories that have data, so the effective weights of the
// present categories always sum to the original total. The categories
// slice is updated in place with the effective weight each entry carried.
func Overall(categories []model.CategoryScore, baseWeights map[model.Category]float64) model.OverallScore {
	var present []int
	lostWeight := 0.0
	for i, cs := range categories {
		if cs.Score.IsNoData() {
			lostWeight += baseWeights[cs.Category]
			continue
		}
		present = append(present, i)
	}
	if len(present) == 0 {
		return model.OverallScore{Score: model.NoData()}
	}

	redistribution := lostWeight / float64(len(present))
	effective := make(map[model.Category]float64, len(present))
	sum, weightSum := 0.0, 0.0
	for _, i := range present {
		cs := &categories[i]
		w := baseWeights[cs.Category] + redistribution
		cs.EffectiveWeight = w
		effective[cs.Category] = w
		sum += float64(cs.Score.Value()) * w
		weightSum += w
	}
	if weightSum == 0 {
		return model.OverallScore{Score: model.NoData()}
	}
	return model.OverallScore{
		Score:            model.NewScoreFromFloat(sum / weightSum),
		EffectiveWeights: effective,
	}
}
