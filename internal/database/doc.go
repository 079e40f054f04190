// Package database provides SQLite-based storage for scoring history.
//
// This package implements the HistoryDB, which stores:
//   - Complete analysis results as JSON for later retrieval
//   - Per-run summary rows for cheap history listings
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
