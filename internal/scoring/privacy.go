package scoring

import (
	"fmt"
	"slices"

	"github.com/webfacts/presencescore/internal/model"
	"github.com/webfacts/presencescore/internal/registry"
)

// Data privacy starts from a neutral baseline and moves with evidence in
// both directions. Detected violations and undocumented data flows push
// the score down; confirmed compliance artifacts push it up.
const (
	privacyBaseline = 75.0

	privacyPenaltyCritical = 30.0
	privacyPenaltyHigh     = 15.0
	privacyPenaltyMedium   = 8.0
	privacyPenaltyLow      = 3.0

	privacyPenaltyTracking     = 10.0
	privacyPenaltyThirdCountry = 8.0
)

// ScoreDataPrivacy scores data protection compliance. Beyond the snapshot's
// detected violations, two classes are derived here from cross-referencing
// automated detection with reviewer answers: tracking scripts without
// confirmed consent and third-country services without a processing
// agreement. The topic is compliance-capped.
func ScoreDataPrivacy(reg *registry.Registry, raw *model.RawFindings, o *model.ManualOverrides) (model.Score, []model.ViolationStatus) {
	detected := raw.ViolationsFor(model.TopicDataPrivacy)
	derived := derivePrivacyViolations(raw, o)

	all := slices.Clone(detected)
	all = append(all, derived...)
	statuses := reg.Evaluate(model.TopicDataPrivacy, all, o)

	pre := privacyBaseScore(raw, o, statuses, derived)
	return ApplyCap(pre, registry.ActiveCount(statuses)), statuses
}

// privacyBaseScore computes the pre-cap score. Derived violations are
// excluded from the severity penalties because their underlying facts
// already carry flat deductions; counting both would punish the same
// finding twice.
func privacyBaseScore(raw *model.RawFindings, o *model.ManualOverrides, statuses []model.ViolationStatus, derived []model.Violation) model.Score {
	var priv *model.PrivacyFindings
	if raw != nil {
		priv = raw.Privacy
	}
	var ov *model.PrivacyOverride
	if o != nil {
		ov = o.Privacy
	}
	if priv == nil && ov == nil && len(statuses) == 0 {
		return model.NoData()
	}

	derivedIDs := make(map[model.ViolationID]bool, len(derived))
	for _, v := range derived {
		derivedIDs[v.ID] = true
	}

	score := privacyBaseline
	for _, vs := range statuses {
		if vs.NeutralizedBy != "" || vs.Violation.Suppressed || derivedIDs[vs.Violation.ID] {
			continue
		}
		switch vs.Violation.Severity {
		case model.SeverityCritical:
			score -= privacyPenaltyCritical
		case model.SeverityHigh:
			score -= privacyPenaltyHigh
		case model.SeverityMedium:
			score -= privacyPenaltyMedium
		case model.SeverityLow:
			score -= privacyPenaltyLow
		}
	}

	if priv != nil {
		for _, script := range priv.TrackingScripts {
			if !confirmed(ov.ConsentFor(script)) {
				score -= privacyPenaltyTracking
			}
		}
		for _, svc := range priv.ExternalServices {
			if svc.ThirdCountry && !confirmed(ov.AgreementFor(svc.Name)) {
				score -= privacyPenaltyThirdCountry
			}
		}
	}

	if ov != nil {
		score += boolBonus(ov.ProcessingRegister, 10, -10)
		score += boolBonus(ov.DataProtectionOfficer, 10, -5)
		if ov.ThirdCountryTransfer != nil {
			switch {
			case !*ov.ThirdCountryTransfer:
				score += 5
			case confirmed(ov.TransferDocumented):
				score += 3
			default:
				score -= 15
			}
		}
	}
	return model.NewScoreFromFloat(score)
}

// derivePrivacyViolations turns undocumented data flows into violations so
// they participate in capping and appear on the audit list.
func derivePrivacyViolations(raw *model.RawFindings, o *model.ManualOverrides) []model.Violation {
	if raw == nil || raw.Privacy == nil {
		return nil
	}
	var ov *model.PrivacyOverride
	if o != nil {
		ov = o.Privacy
	}

	var violations []model.Violation
	for _, script := range raw.Privacy.TrackingScripts {
		if confirmed(ov.ConsentFor(script)) {
			continue
		}
		violations = append(violations, model.NewAutoViolation(
			model.TopicDataPrivacy,
			fmt.Sprintf("Tracking script %q is loaded without confirmed consent", script),
			model.SeverityCritical,
		))
	}
	for _, svc := range raw.Privacy.ExternalServices {
		if !svc.ThirdCountry || confirmed(ov.AgreementFor(svc.Name)) {
			continue
		}
		violations = append(violations, model.NewAutoViolation(
			model.TopicDataPrivacy,
			fmt.Sprintf("External service %q transfers data to a third country without a processing agreement", svc.Name),
			model.SeverityHigh,
		))
	}
	return violations
}

// confirmed reports whether a tri-state answer is an explicit yes.
func confirmed(b *bool) bool {
	return b != nil && *b
}

// boolBonus maps a tri-state answer to a score delta; unanswered is 0.
func boolBonus(b *bool, yes, no float64) float64 {
	if b == nil {
		return 0
	}
	if *b {
		return yes
	}
	return no
}
