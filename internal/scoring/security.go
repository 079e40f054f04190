package scoring

import (
	"github.com/webfacts/presencescore/internal/model"
	"github.com/webfacts/presencescore/internal/registry"
)

// ScoreTechnicalSecurity scores transport security and server hygiene.
// The topic is compliance-capped: the returned statuses carry the full
// audit list and the score is clamped by the active violation count.
func ScoreTechnicalSecurity(reg *registry.Registry, raw *model.RawFindings, o *model.ManualOverrides) (model.Score, []model.ViolationStatus) {
	statuses := reg.Evaluate(model.TopicTechnicalSecurity, raw.ViolationsFor(model.TopicTechnicalSecurity), o)
	pre := blend(securityAutoScore(raw), securityManualScore(o))
	return ApplyCap(pre, registry.ActiveCount(statuses)), statuses
}

// securityAutoScore derives the automated security score.
// Component budget: TLS 40, HSTS 15, certificate runway 10, current server
// software 15, security headers 20.
func securityAutoScore(raw *model.RawFindings) model.Score {
	if raw == nil || raw.Security == nil {
		return model.NoData()
	}
	sec := raw.Security

	points := 0.0
	if sec.HasSSL {
		points += 40
	}
	if sec.HSTS {
		points += 15
	}
	switch {
	case sec.CertExpiryDays > 30:
		points += 10
	case sec.CertExpiryDays > 7:
		points += 5
	}
	if !sec.OutdatedServer {
		points += 15
	}
	headers := sec.SecurityHeaderCount
	if headers > 4 {
		headers = 4
	}
	if headers > 0 {
		points += float64(headers) * 5
	}
	return model.NewScoreFromFloat(points)
}

// securityManualScore derives a score from the reviewer's security answers.
// Component budget: TLS 50, HSTS 20, current server software 30.
func securityManualScore(o *model.ManualOverrides) model.Score {
	if o == nil || o.Security == nil {
		return model.NoData()
	}
	ov := o.Security
	if ov.HasSSL == nil && ov.HSTS == nil && ov.UpToDateServer == nil {
		return model.NoData()
	}

	points := 0.0
	if ov.HasSSL != nil && *ov.HasSSL {
		points += 50
	}
	if ov.HSTS != nil && *ov.HSTS {
		points += 20
	}
	if ov.UpToDateServer != nil && *ov.UpToDateServer {
		points += 30
	}
	return model.NewScoreFromFloat(points)
}
