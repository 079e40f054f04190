package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSnapshot is returned when no findings snapshot is specified.
	ErrNoSnapshot = errors.New("no snapshot specified: provide a findings snapshot file")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNegativeWeight is returned when a configured weight is negative.
	// Use 0 to exclude a category or topic from scoring.
	ErrNegativeWeight = errors.New("invalid weight: must be non-negative")

	// ErrZeroWeightSum is returned when the category weights sum to zero,
	// which would leave nothing to score against.
	ErrZeroWeightSum = errors.New("invalid category weights: sum must be positive")
)
