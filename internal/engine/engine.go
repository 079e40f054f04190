package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/webfacts/presencescore/internal/aggregate"
	"github.com/webfacts/presencescore/internal/config"
	"github.com/webfacts/presencescore/internal/diag"
	"github.com/webfacts/presencescore/internal/model"
	"github.com/webfacts/presencescore/internal/registry"
	"github.com/webfacts/presencescore/internal/scoring"
)

// DefaultConcurrency is the number of topic scorers evaluated in
// parallel. Scorers are CPU-light; the limit mostly bounds goroutine
// churn on snapshots scored in bulk.
const DefaultConcurrency = 4

// Engine computes a full analysis result from a findings snapshot and
// the reviewer's overrides.
type Engine struct {
	logger          *slog.Logger
	recorder        diag.Recorder
	registry        *registry.Registry
	categoryWeights map[model.Category]float64
	topicWeights    map[model.Topic]float64
	concurrency     int
	now             func() time.Time
}

// Option is a function that configures an Engine.
// This follows the functional options pattern for clean API design.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRecorder sets the diagnostics recorder receiving one entry per
// topic calculation. If not set, traces are discarded.
func WithRecorder(r diag.Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithCategoryWeights replaces the default category weight table.
func WithCategoryWeights(weights map[model.Category]float64) Option {
	return func(e *Engine) {
		e.categoryWeights = weights
	}
}

// WithTopicWeights replaces the default topic weight table.
func WithTopicWeights(weights map[model.Topic]float64) Option {
	return func(e *Engine) {
		e.topicWeights = weights
	}
}

// WithConcurrency bounds the number of topics scored in parallel.
// Values below 1 fall back to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.concurrency = n
		}
	}
}

// WithClock replaces the time source, for reproducible results in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		recorder:        diag.NopRecorder{},
		categoryWeights: config.DefaultCategoryWeights(),
		topicWeights:    config.DefaultTopicWeights(),
		concurrency:     DefaultConcurrency,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.registry = registry.New(e.logger)
	return e
}

// Evaluate scores a snapshot against the reviewer's overrides and returns
// the complete result tree. Topics are scored concurrently; a panicking
// scorer degrades its topic to NoData instead of failing the run, because
// one malformed measurement must never take the whole analysis down.
func (e *Engine) Evaluate(ctx context.Context, raw *model.RawFindings, overrides *model.ManualOverrides) (*model.AnalysisResult, error) {
	topics := model.AllTopics()
	scores := make([]model.Score, len(topics))
	statuses := make([][]model.ViolationStatus, len(topics))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, topic := range topics {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			scores[i], statuses[i] = e.scoreTopic(topic, raw, overrides)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &model.AnalysisResult{
		DateScored: e.now(),
	}
	if raw != nil {
		result.Domain = raw.Domain
	}
	if overrides != nil {
		result.ReviewedCategories = overrides.ReviewedCategories
	}

	topicScores := make(map[model.Topic]model.Score, len(topics))
	for i, topic := range topics {
		topicScores[topic] = scores[i]
		result.Topics = append(result.Topics, model.TopicScore{Topic: topic, Score: scores[i]})
		result.Violations = append(result.Violations, statuses[i]...)
	}
	for _, c := range model.AllCategories() {
		result.Categories = append(result.Categories, aggregate.Category(c, topicScores, e.topicWeights))
	}
	result.Overall = aggregate.Overall(result.Categories, e.categoryWeights)
	return result, nil
}

// scoreTopic dispatches one topic to its scorer, recording the trace and
// converting panics into NoData.
func (e *Engine) scoreTopic(topic model.Topic, raw *model.RawFindings, overrides *model.ManualOverrides) (score model.Score, statuses []model.ViolationStatus) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("topic scorer panicked, degrading to no data",
				"topic", string(topic), "panic", r)
			score = model.NoData()
			statuses = nil
		}
	}()

	switch topic {
	case model.TopicSearchOptimization:
		score = scoring.ScoreSearchOptimization(raw, overrides)
	case model.TopicLocalPresence:
		score = scoring.ScoreLocalPresence(raw, overrides)
	case model.TopicContentQuality:
		score = scoring.ScoreContentQuality(raw, overrides)
	case model.TopicBacklinks:
		score = scoring.ScoreBacklinks(raw, overrides)
	case model.TopicAccessibility:
		score, statuses = scoring.ScoreAccessibility(e.registry, raw, overrides)
	case model.TopicDataPrivacy:
		score, statuses = scoring.ScoreDataPrivacy(e.registry, raw, overrides)
	case model.TopicTechnicalSecurity:
		score, statuses = scoring.ScoreTechnicalSecurity(e.registry, raw, overrides)
	case model.TopicSocialPresence:
		score = scoring.ScoreSocialPresence(raw, overrides)
	case model.TopicWorkplaceReputation:
		score = scoring.ScoreWorkplaceReputation(raw, overrides)
	case model.TopicStaffQualification:
		score = scoring.ScoreStaffQualification(raw, overrides)
	case model.TopicQuoteResponse:
		score = scoring.ScoreQuoteResponse(raw, overrides)
	case model.TopicHourlyRates:
		score = scoring.ScoreHourlyRates(raw, overrides)
	case model.TopicCorporateIdentity:
		score = scoring.ScoreCorporateIdentity(raw, overrides)
	default:
		e.logger.Warn("unknown topic skipped", "topic", string(topic))
		score = model.NoData()
	}

	e.recorder.Record(diag.Entry{
		Topic: topic,
		InputsHash: diag.HashInputs(struct {
			Raw       *model.RawFindings
			Overrides *model.ManualOverrides
		}{raw, overrides}),
		Score: score,
	})
	return score, statuses
}
