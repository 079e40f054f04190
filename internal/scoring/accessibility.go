package scoring

import (
	"github.com/webfacts/presencescore/internal/model"
	"github.com/webfacts/presencescore/internal/registry"
)

// ScoreAccessibility scores how usable the site is for visitors with
// assistive needs. The automated side is driven by the accessibility
// audit's violation count; the manual side is a reviewer checklist
// blended with an overall rating. The topic is compliance-capped.
func ScoreAccessibility(reg *registry.Registry, raw *model.RawFindings, o *model.ManualOverrides) (model.Score, []model.ViolationStatus) {
	statuses := reg.Evaluate(model.TopicAccessibility, raw.ViolationsFor(model.TopicAccessibility), o)
	pre := blend(accessibilityAutoScore(raw, o), accessibilityManualScore(o))
	return ApplyCap(pre, registry.ActiveCount(statuses)), statuses
}

// accessibilityAutoScore maps the audit's unsuppressed violation count to
// a score tier. The topic key must be present in the snapshot for the
// audit to count as having run; an absent key means no data, an empty
// list means a clean audit.
func accessibilityAutoScore(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	if raw == nil {
		return model.NoData()
	}
	violations, ok := raw.Violations[model.TopicAccessibility]
	if !ok {
		return model.NoData()
	}

	active := 0
	for _, v := range violations {
		if v.Suppressed || o.IsSuppressed(v.ID) {
			continue
		}
		active++
	}
	switch {
	case active == 0:
		return model.NewScore(95)
	case active <= 3:
		return model.NewScore(75)
	case active <= 7:
		return model.NewScore(55)
	default:
		return model.NewScore(40)
	}
}

// accessibilityManualScore blends checklist completeness (60%) with the
// reviewer's overall rating (40%); either side alone passes through.
func accessibilityManualScore(o *model.ManualOverrides) model.Score {
	if o == nil || o.Accessibility == nil {
		return model.NoData()
	}
	ov := o.Accessibility

	checklist, haveChecklist := model.ChecklistRatio([]model.ChecklistItem{
		{Name: "alt_texts_present", Checked: ov.AltTextsPresent},
		{Name: "contrast_sufficient", Checked: ov.ContrastSufficient},
		{Name: "keyboard_navigable", Checked: ov.KeyboardNavigable},
		{Name: "aria_labels_present", Checked: ov.AriaLabelsPresent},
		{Name: "font_scalable", Checked: ov.FontScalable},
	})
	rating := percentScore(ov.OverallRating)

	switch {
	case haveChecklist && !rating.IsNoData():
		return model.NewScoreFromFloat(checklist*100*0.6 + float64(rating.Value())*0.4)
	case haveChecklist:
		return model.NewScoreFromFloat(checklist * 100)
	default:
		return rating
	}
}
