package scoring

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/webfacts/presencescore/internal/model"
)

// Social scoring constants. The normalization denominator is tuned so
// that a strong two-platform presence lands in the 70s and only a broad,
// active multi-platform presence approaches 100. Changing it rescales
// every historical social score.
const (
	socialBasePoints        = 50.0
	socialFollowerThreshold = 100
	socialPresenceBonus     = 20.0
	socialPlatformMax       = 100.0

	socialTwoPlatformBonus   = 0.10
	socialMultiPlatformBonus = 0.25

	socialNormalizer = 187.5
)

// foldCaser performs Unicode case folding so recency labels match
// regardless of platform capitalization ("Heute", "HEUTE", "heute").
var foldCaser = cases.Fold()

// ScoreSocialPresence scores the business's social media presence across
// all supported platforms. Reviewer corrections are applied per platform
// before scoring; an explicit "does not exist" removes a detected profile.
func ScoreSocialPresence(raw *model.RawFindings, o *model.ManualOverrides) model.Score {
	profiles, haveData := effectiveProfiles(raw, o)
	if !haveData {
		return model.NoData()
	}

	sum := 0.0
	active := 0
	for _, p := range profiles {
		if !p.Exists {
			continue
		}
		sum += platformScore(p)
		active++
	}
	switch {
	case active >= 3:
		sum += sum * socialMultiPlatformBonus
	case active == 2:
		sum += sum * socialTwoPlatformBonus
	}
	return model.NewScoreFromFloat(sum / socialNormalizer * 100)
}

// effectiveProfiles merges detected profiles with reviewer corrections.
// The second return value is false when neither detection nor review
// produced any social data at all.
func effectiveProfiles(raw *model.RawFindings, o *model.ManualOverrides) (map[model.SocialPlatform]model.SocialProfile, bool) {
	haveData := false
	profiles := make(map[model.SocialPlatform]model.SocialProfile)

	if raw != nil && raw.Social != nil {
		haveData = true
		for platform, p := range raw.Social {
			profiles[platform] = p
		}
	}
	if o != nil {
		for platform, ov := range o.Social {
			if ov == nil {
				continue
			}
			haveData = true
			p := profiles[platform]
			if ov.Exists != nil {
				p.Exists = *ov.Exists
			}
			if ov.Followers != nil {
				p.Followers = *ov.Followers
			}
			if ov.LastActivity != "" {
				p.LastActivity = ov.LastActivity
			}
			if ov.URL != "" {
				p.URL = ov.URL
			}
			profiles[platform] = p
		}
	}
	return profiles, haveData
}

// platformScore rates a single existing profile on a 0-100 scale:
// 50 base points for existing, 20 for a minimum audience, up to 15 for
// audience size, and up to 15 for posting recency.
func platformScore(p model.SocialProfile) float64 {
	score := socialBasePoints
	followers := p.Followers
	if followers < 0 {
		followers = 0
	}
	if followers >= socialFollowerThreshold {
		score += socialPresenceBonus
	}
	score += followerBonus(followers)
	score += recencyBonus(p.LastActivity)
	if score > socialPlatformMax {
		score = socialPlatformMax
	}
	return score
}

func followerBonus(followers int) float64 {
	switch {
	case followers >= 100000:
		return 15
	case followers >= 10000:
		return 12
	case followers >= 5000:
		return 9
	case followers >= 1000:
		return 6
	case followers >= 500:
		return 4
	case followers >= socialFollowerThreshold:
		return 2
	default:
		return 0
	}
}

// recencyBonus maps a platform's free-text recency label to a bonus tier.
// Labels arrive in German or English depending on the platform locale;
// matching is substring-based after case folding. Plural "Wochen" and
// "Monat" tokens are checked before the singular week tokens because a
// "vor 3 Wochen" label means weeks ago, not this week.
func recencyBonus(label string) float64 {
	l := foldCaser.String(strings.TrimSpace(label))
	switch {
	case containsAny(l, "heute", "today", "gestern", "yesterday", "stunde", "hour", "minute", "gerade"):
		return 15
	case containsAny(l, "wochen", "weeks", "monat", "month"):
		return 5
	case containsAny(l, "woche", "week", "tagen", "days", "tage"):
		return 10
	default:
		return 0
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
