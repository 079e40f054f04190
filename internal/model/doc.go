// Package model defines the data structures shared across the scoring
// engine: the Score sum type, severity levels, violations with stable
// identities, the immutable RawFindings snapshot, per-topic manual
// overrides, and the score tree produced for each analysis.
//
// All types in this package are plain data. Scoring rules live in the
// scoring, registry, and aggregate packages; this package only guarantees
// structural invariants (scores clamped to [0,100], violation identities
// stable across runs).
package model
