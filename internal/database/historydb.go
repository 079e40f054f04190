package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/webfacts/presencescore/internal/model"
)

// HistoryDB provides SQLite-based storage for analysis results.
// It manages connection pooling and provides methods for saving and
// retrieving past runs.
//
// Design decision: We store one database file per data directory rather
// than one file per domain. This keeps cross-domain listings and
// backup/restore operations simple.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "presencescore.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses URI-style mode flags. mode=rw prevents the
	// driver from creating new files when CreateIfNotExists is false.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY errors under concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Analysis runs store complete score trees as JSON, plus a few
	-- denormalized columns so history listings never parse the blob.
	CREATE TABLE IF NOT EXISTS analysis_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		domain TEXT NOT NULL,
		date_scored DATETIME NOT NULL,
		overall_score INTEGER,
		active_violations INTEGER DEFAULT 0,
		has_critical INTEGER DEFAULT 0,
		result_json TEXT NOT NULL,
		severity_summary TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_domain ON analysis_runs(domain);
	CREATE INDEX IF NOT EXISTS idx_runs_date ON analysis_runs(date_scored);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveResult saves a complete analysis result as JSON.
// The overall score column is NULL when the run produced no data.
func (hdb *HistoryDB) SaveResult(ctx context.Context, result *model.AnalysisResult) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize result: %w", err)
	}

	severity := map[string]int{
		"critical": 0,
		"high":     0,
		"medium":   0,
		"low":      0,
	}
	for sev, n := range result.SeverityCounts() {
		severity[sev.String()] = n
	}
	severityJSON, _ := json.Marshal(severity) //nolint:errcheck,errchkjson // severity is a simple map; Marshal won't fail

	var overall any
	if v, ok := result.Overall.Score.ValueOK(); ok {
		overall = v
	}

	hasCritical := 0
	if result.HasUnresolvedCritical() {
		hasCritical = 1
	}

	query := `
	INSERT INTO analysis_runs (domain, date_scored, overall_score, active_violations, has_critical, result_json, severity_summary)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := hdb.db.ExecContext(ctx, query,
		result.Domain,
		result.DateScored.UTC().Format(time.RFC3339),
		overall,
		result.ActiveViolationCount(),
		hasCritical,
		string(resultJSON),
		string(severityJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis result: %w", err)
	}

	return res.LastInsertId()
}

// LatestResult retrieves the most recent analysis result for a domain.
// Returns nil without error when the domain has no history.
func (hdb *HistoryDB) LatestResult(ctx context.Context, domain string) (*model.AnalysisResult, error) {
	query := `
	SELECT result_json FROM analysis_runs
	WHERE domain = ?
	ORDER BY date_scored DESC, id DESC
	LIMIT 1
	`

	var resultJSON string
	err := hdb.db.QueryRowContext(ctx, query, domain).Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis result: %w", err)
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}

	return &result, nil
}

// ResultHistory retrieves all analysis results for a domain, newest first.
func (hdb *HistoryDB) ResultHistory(ctx context.Context, domain string) ([]*model.AnalysisResult, error) {
	query := `
	SELECT result_json FROM analysis_runs
	WHERE domain = ?
	ORDER BY date_scored DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to get result history: %w", err)
	}
	defer rows.Close()

	var results []*model.AnalysisResult
	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		var result model.AnalysisResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			continue // Skip malformed rows
		}
		results = append(results, &result)
	}

	return results, rows.Err()
}

// ListDomains returns all domains with at least one stored run.
func (hdb *HistoryDB) ListDomains(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT domain FROM analysis_runs
	ORDER BY domain
	`

	rows, err := hdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer rows.Close()

	var domains []string
	for rows.Next() {
		var domain string
		if err := rows.Scan(&domain); err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, domain)
	}

	return domains, rows.Err()
}

// RunMetadata contains summary information about a stored run.
// This is used for displaying history without loading the full result.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Domain is the audited business domain.
	Domain string

	// DateScored is when the engine produced the result.
	DateScored time.Time

	// OverallScore is the stored overall score. NoData when the run
	// produced no scoreable data.
	OverallScore model.Score

	// ActiveViolations is the number of violations counting toward caps.
	ActiveViolations int

	// HasCritical reports whether any counted violation was critical.
	HasCritical bool

	// SeveritySummary contains counts of violations by severity level.
	SeveritySummary map[string]int
}

// History retrieves run metadata for a domain, newest first.
// This is more efficient than ResultHistory when only metadata is needed.
func (hdb *HistoryDB) History(ctx context.Context, domain string) ([]RunMetadata, error) {
	query := `
	SELECT id, domain, date_scored, overall_score, active_violations, has_critical, severity_summary
	FROM analysis_runs
	WHERE domain = ?
	ORDER BY date_scored DESC, id DESC
	`

	rows, err := hdb.db.QueryContext(ctx, query, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var dateScored string
		var overall sql.NullInt64
		var hasCritical int
		var severityJSON sql.NullString

		err := rows.Scan(
			&meta.ID,
			&meta.Domain,
			&dateScored,
			&overall,
			&meta.ActiveViolations,
			&hasCritical,
			&severityJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run metadata: %w", err)
		}

		meta.DateScored = parseTimestamp(dateScored)
		meta.HasCritical = hasCritical != 0
		if overall.Valid {
			meta.OverallScore = model.NewScore(int(overall.Int64))
		} else {
			meta.OverallScore = model.NoData()
		}
		if severityJSON.Valid && severityJSON.String != "" {
			if err := json.Unmarshal([]byte(severityJSON.String), &meta.SeveritySummary); err != nil {
				return nil, fmt.Errorf("failed to parse severity summary: %w", err)
			}
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	time.RFC3339,              // Format we write in SaveResult
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
