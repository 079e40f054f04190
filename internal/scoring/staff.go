package scoring

import "github.com/webfacts/presencescore/internal/model"

// Staff qualification is an entirely reviewer-entered topic: there is no
// automated source for headcounts or certificates. The score is built
// from qualification ratios against total headcount plus checklist and
// training bonuses.
//
// Component budget: qualification base 40, master ratio 25, skilled ratio
// 20, high-qualification bonus 10, certifications 5, trade qualifications
// 10, training program 10, employee certificates 10. The budget exceeds
// 100 on purpose; a business does not need every bonus to reach the top.
func ScoreStaffQualification(_ *model.RawFindings, o *model.ManualOverrides) model.Score {
	if o == nil || o.Staff == nil {
		return model.NoData()
	}
	st := o.Staff

	total := intValue(st.TotalHeadcount)
	_, haveCerts := model.ChecklistRatio(st.Certifications)
	_, haveQuals := model.ChecklistRatio(st.DomainQualifications)
	if total <= 0 && !haveCerts && !haveQuals && st.TrainingProgram == nil && st.EmployeeCertificates == nil {
		return model.NoData()
	}

	points := 0.0
	if total > 0 {
		masters := float64(intValue(st.Masters))
		skilled := float64(intValue(st.Skilled))
		office := float64(intValue(st.Office))

		qualified := (masters + skilled + office) / float64(total)
		if qualified > 1 {
			qualified = 1
		}
		points += qualificationBase(qualified)
		points += masterRatioPoints(masters / float64(total))
		points += skilledRatioPoints(skilled / float64(total))
		switch {
		case qualified >= 0.95:
			points += 10
		case qualified >= 0.85:
			points += 5
		}
	}

	if ratio, ok := model.ChecklistRatio(st.Certifications); ok {
		points += ratio * 5
	}
	if ratio, ok := model.ChecklistRatio(st.DomainQualifications); ok {
		points += ratio * 10
	}
	if confirmed(st.TrainingProgram) {
		points += 10
	}
	if certs := intValue(st.EmployeeCertificates); certs > 0 {
		if certs > 5 {
			certs = 5
		}
		points += float64(certs) / 5 * 10
	}
	return model.NewScoreFromFloat(points)
}

func qualificationBase(qualified float64) float64 {
	switch {
	case qualified >= 0.9:
		return 40
	case qualified >= 0.8:
		return 35
	case qualified >= 0.7:
		return 30
	case qualified >= 0.5:
		return 20
	default:
		return qualified * 40
	}
}

func masterRatioPoints(ratio float64) float64 {
	switch {
	case ratio >= 0.3:
		return 25
	case ratio >= 0.2:
		return 20
	case ratio >= 0.1:
		return 14
	case ratio > 0:
		return 8
	default:
		return 0
	}
}

func skilledRatioPoints(ratio float64) float64 {
	switch {
	case ratio >= 0.6:
		return 20
	case ratio >= 0.4:
		return 15
	case ratio >= 0.2:
		return 10
	case ratio > 0:
		return 5
	default:
		return 0
	}
}

// intValue dereferences a tri-state count; nil or negative is 0.
func intValue(p *int) int {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}
