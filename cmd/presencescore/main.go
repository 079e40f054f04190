// Package main provides the entry point for the presencescore CLI.
//
// presencescore rates the online presence of a local business from a
// collected findings snapshot and optional reviewer overrides.
//
// Usage:
//
//	presencescore score --snapshot findings.json
//	presencescore score --snapshot findings.json --overrides review.json
//
// See --help for all available options.
package main

// main is the entry point for presencescore.
func main() {
	Execute()
}
