// Package scoring implements the per-topic scorers and the violation cap.
//
// Every scorer is a pure function over the immutable RawFindings snapshot
// and the optional manual overrides: automated data alone yields the
// automated score, manual data alone the manual score, both together the
// fixed 60/40 blend (automated measurements are the objective baseline,
// manual review the correction layer), and neither yields NoData. The
// compliance-capped topics (accessibility, data privacy, technical
// security) additionally run the violation registry and clamp their score
// by the active violation count.
//
// The tier constants and blend ratio are empirically tuned values carried
// over from the calibrated scoring model; they are preserved exactly.
package scoring
