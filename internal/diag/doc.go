// Package diag provides scoring diagnostics: structured loggers and
// calculation trace recorders. Every topic calculation can be recorded
// with its input fingerprint and intermediate values so that a disputed
// score is explainable after the fact.
package diag
