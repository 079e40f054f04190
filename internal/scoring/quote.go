package scoring

import "github.com/webfacts/presencescore/internal/model"

// Quote-response scoring is entirely reviewer-driven: a test quote request
// is sent to the business and the reviewer records what came back.
// Component budget: response speed 40, channel breadth 30, response
// quality 30.
const (
	quoteScoreNoResponse   = 10
	quoteScoreSlowResponse = 15

	quoteChannelMax = 30.0
)

// ScoreQuoteResponse scores how the business handles quote requests.
// No response at all and responses slower than two days are hard failures
// that short-circuit the score regardless of channels and quality; a
// business that ignores inquiries gets no credit for offering five ways to
// be ignored through.
func ScoreQuoteResponse(_ *model.RawFindings, o *model.ManualOverrides) model.Score {
	if o == nil || o.Quote == nil {
		return model.NoData()
	}
	q := o.Quote
	if q.ResponseTime == "" && len(q.Channels) == 0 && q.Quality == "" {
		return model.NoData()
	}

	switch q.ResponseTime {
	case model.ResponseNone:
		return model.NewScore(quoteScoreNoResponse)
	case model.ResponseOver2Days:
		return model.NewScore(quoteScoreSlowResponse)
	}

	points := responseTimePoints(q.ResponseTime)
	points += channelPoints(q.Channels)
	points += qualityPoints(q.Quality)
	return model.NewScoreFromFloat(points)
}

func responseTimePoints(t model.ResponseTime) float64 {
	switch t {
	case model.ResponseWithin1h:
		return 40
	case model.ResponseWithin4h:
		return 35
	case model.ResponseWithin1Day:
		return 28
	case model.ResponseWithin2Days:
		return 20
	default:
		return 0
	}
}

// channelPoints awards points per distinct offered channel type. Direct
// synchronous channels weigh more than asynchronous ones.
func channelPoints(channels []model.ContactChannel) float64 {
	weights := map[model.ContactChannel]float64{
		model.ChannelPhone:    6.25,
		model.ChannelEmail:    6.25,
		model.ChannelForm:     5,
		model.ChannelChat:     4.5,
		model.ChannelWhatsApp: 4,
		model.ChannelSocial:   4,
	}
	seen := make(map[model.ContactChannel]bool, len(channels))
	points := 0.0
	for _, ch := range channels {
		if seen[ch] {
			continue
		}
		seen[ch] = true
		points += weights[ch]
	}
	if points > quoteChannelMax {
		points = quoteChannelMax
	}
	return points
}

func qualityPoints(q model.ResponseQuality) float64 {
	switch q {
	case model.QualityExcellent:
		return 30
	case model.QualityGood:
		return 22
	case model.QualityAverage:
		return 14
	case model.QualityPoor:
		return 5
	default:
		return 0
	}
}
