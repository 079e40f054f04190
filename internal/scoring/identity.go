package scoring

import "github.com/webfacts/presencescore/internal/model"

// identityNeutralScore is returned when no brand signal was assessed.
// Brand consistency cannot be measured automatically, so absent reviewer
// input means "not assessed", not "inconsistent"; the neutral midpoint
// keeps the topic in the category average without rewarding or punishing
// the business. This is the one topic that never goes to no-data.
const identityNeutralScore = 50

// ScoreCorporateIdentity scores brand consistency from the reviewer's
// checklist (60%) and overall rating (40%); either side alone passes
// through. With zero signals it returns the neutral midpoint.
func ScoreCorporateIdentity(_ *model.RawFindings, o *model.ManualOverrides) model.Score {
	if o == nil || o.Identity == nil {
		return model.NewScore(identityNeutralScore)
	}
	id := o.Identity

	checklist, haveChecklist := model.ChecklistRatio([]model.ChecklistItem{
		{Name: "logo_consistent", Checked: id.LogoConsistent},
		{Name: "color_scheme_consistent", Checked: id.ColorSchemeConsistent},
		{Name: "typography_consistent", Checked: id.TypographyConsistent},
		{Name: "imagery_consistent", Checked: id.ImageryConsistent},
		{Name: "slogan_present", Checked: id.SloganPresent},
	})
	rating := percentScore(id.OverallRating)

	switch {
	case haveChecklist && !rating.IsNoData():
		return model.NewScoreFromFloat(checklist*100*0.6 + float64(rating.Value())*0.4)
	case haveChecklist:
		return model.NewScoreFromFloat(checklist * 100)
	case !rating.IsNoData():
		return rating
	default:
		return model.NewScore(identityNeutralScore)
	}
}
