package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/webfacts/presencescore/internal/model"
)

// AppName is the application name used for XDG directory paths.
const AppName = "presencescore"

// Default category weights. Findability carries the largest share because
// a local business that cannot be found has no use for the rest of its
// presence; the remaining weight is split between site quality, legal
// compliance, and the softer reputation signals.
//
// The weights are percentages and must sum to 100. When a category has no
// data its weight is redistributed evenly over the categories that do.
const (
	DefaultWeightFindability         = 30.0
	DefaultWeightWebsiteQuality      = 20.0
	DefaultWeightLegalPrivacy        = 20.0
	DefaultWeightSocialMedia         = 10.0
	DefaultWeightReputation          = 10.0
	DefaultWeightCorporateAppearance = 10.0
)

// Config holds all configuration options for a scoring run.
// This struct is populated from CLI flags and the optional configuration
// file and passed through the application via dependency injection rather
// than global state.
//
// Design decision: We use a single flat struct instead of nested structs.
// The number of options is manageable, and nesting would add complexity
// without significant benefit.
type Config struct {
	// SnapshotFile is the path to the raw findings snapshot (JSON).
	SnapshotFile string

	// OverridesFile is the path to the manual overrides file (JSON).
	// Optional; scoring runs on automated findings alone without it.
	OverridesFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// AllowUnreviewed skips the reviewer sign-off gate for customer-facing
	// report formats. Intended for internal inspection only.
	AllowUnreviewed bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .presencescore in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// Weights holds weight overrides loaded from the config file.
	Weights *File

	// DBDir is the directory path for storing the SQLite history database.
	// When set, results are saved for historical comparison.
	// Defaults to the XDG data directory when SaveToDB is requested.
	DBDir string

	// SaveToDB indicates whether to save results to the history database.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values so that the defaults are documented in one place.
func NewConfig() *Config {
	return &Config{}
}

// DefaultCategoryWeights returns the built-in category weight table.
func DefaultCategoryWeights() map[model.Category]float64 {
	return map[model.Category]float64{
		model.CategoryFindability:         DefaultWeightFindability,
		model.CategoryWebsiteQuality:      DefaultWeightWebsiteQuality,
		model.CategoryLegalPrivacy:        DefaultWeightLegalPrivacy,
		model.CategorySocialMedia:         DefaultWeightSocialMedia,
		model.CategoryReputation:          DefaultWeightReputation,
		model.CategoryCorporateAppearance: DefaultWeightCorporateAppearance,
	}
}

// DefaultTopicWeights returns the built-in topic weight table.
// Topics within a category weigh equally by default; the config file can
// shift emphasis per topic.
func DefaultTopicWeights() map[model.Topic]float64 {
	weights := make(map[model.Topic]float64, len(model.AllTopics()))
	for _, t := range model.AllTopics() {
		weights[t] = 1
	}
	return weights
}

// CategoryWeights returns the effective category weights after applying
// config file overrides.
func (c *Config) CategoryWeights() map[model.Category]float64 {
	weights := DefaultCategoryWeights()
	if c.Weights == nil {
		return weights
	}
	for name, w := range c.Weights.CategoryWeights {
		weights[model.Category(name)] = w
	}
	return weights
}

// TopicWeights returns the effective topic weights after applying config
// file overrides.
func (c *Config) TopicWeights() map[model.Topic]float64 {
	weights := DefaultTopicWeights()
	if c.Weights == nil {
		return weights
	}
	for name, w := range c.Weights.TopicWeights {
		weights[model.Topic(name)] = w
	}
	return weights
}

// XDGDataDir returns the XDG data directory for the scorer.
// On Linux: ~/.local/share/presencescore
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for the scorer.
// On Linux: ~/.config/presencescore
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.SnapshotFile == "" {
		return ErrNoSnapshot
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	for _, w := range c.CategoryWeights() {
		if w < 0 {
			return ErrNegativeWeight
		}
	}
	total := 0.0
	for _, w := range c.CategoryWeights() {
		total += w
	}
	if total <= 0 {
		return ErrZeroWeightSum
	}
	for _, w := range c.TopicWeights() {
		if w < 0 {
			return ErrNegativeWeight
		}
	}
	return nil
}
