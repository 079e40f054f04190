package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/webfacts/presencescore/internal/config"
	"github.com/webfacts/presencescore/internal/database"
	"github.com/webfacts/presencescore/internal/engine"
	"github.com/webfacts/presencescore/internal/model"
)

func TestNewScoreCmd(t *testing.T) {
	t.Parallel()

	cmd := NewScoreCmd()

	if cmd.Use != "score [snapshot-file]" {
		t.Errorf("unexpected Use: got %q", cmd.Use)
	}

	// Verify flags exist with their short options
	flagsWithShort := map[string]string{
		"overrides": "r",
		"config":    "c",
		"json":      "j",
		"markdown":  "m",
		"output":    "o",
	}
	for flag, shorthand := range flagsWithShort {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("expected flag %q to exist", flag)
			continue
		}
		if f.Shorthand != shorthand {
			t.Errorf("flag %q: expected shorthand %q, got %q", flag, shorthand, f.Shorthand)
		}
	}

	for _, flag := range []string{"allow-unreviewed", "no-save"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag %q to exist", flag)
		}
	}

	// Verify db-dir flag does NOT exist (uses XDG directory)
	if cmd.Flags().Lookup("db-dir") != nil {
		t.Error("db-dir flag should not exist")
	}
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("snapshot from positional argument", func(t *testing.T) {
		t.Parallel()

		cmd := NewScoreCmd()
		cfg, err := buildConfig(cmd, []string{"findings.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SnapshotFile != "findings.json" {
			t.Errorf("expected snapshot 'findings.json', got %q", cfg.SnapshotFile)
		}
		if !cfg.SaveToDB {
			t.Error("expected SaveToDB to default to true")
		}
		if cfg.DBDir == "" {
			t.Error("expected DBDir to be set")
		}
	})

	t.Run("no-save disables database", func(t *testing.T) {
		t.Parallel()

		cmd := NewScoreCmd()
		if err := cmd.Flags().Set("no-save", "true"); err != nil {
			t.Fatal(err)
		}
		cfg, err := buildConfig(cmd, []string{"findings.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SaveToDB {
			t.Error("expected SaveToDB to be false with --no-save")
		}
	})

	t.Run("explicit missing config file errors", func(t *testing.T) {
		t.Parallel()

		cmd := NewScoreCmd()
		if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
			t.Fatal(err)
		}
		_, err := buildConfig(cmd, []string{"findings.json"})
		if err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
		if !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("loads weight overrides from config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "weights.yaml")
		content := "categoryWeights:\n  findability: 50\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewScoreCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatal(err)
		}
		cfg, err := buildConfig(cmd, []string{"findings.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.CategoryWeights()[model.CategoryFindability]; got != 50 {
			t.Errorf("expected findability weight 50, got %v", got)
		}
	})

	t.Run("missing snapshot fails validation", func(t *testing.T) {
		t.Parallel()

		cmd := NewScoreCmd()
		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cfg.Validate(); !errors.Is(err, config.ErrNoSnapshot) {
			t.Errorf("expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("conflicting formats fail validation", func(t *testing.T) {
		t.Parallel()

		cmd := NewScoreCmd()
		if err := cmd.Flags().Set("json", "true"); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("markdown", "true"); err != nil {
			t.Fatal(err)
		}
		cfg, err := buildConfig(cmd, []string{"findings.json"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cfg.Validate(); !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("loads valid snapshot", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "findings.json")
		content := `{"domain": "muster-handwerk.de", "date_collected": "2026-08-01T10:00:00Z"}`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		raw, err := loadSnapshot(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw.Domain != "muster-handwerk.de" {
			t.Errorf("expected domain muster-handwerk.de, got %q", raw.Domain)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Fatal("expected error for missing snapshot")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := loadSnapshot(path); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("missing domain", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nodomain.json")
		if err := os.WriteFile(path, []byte(`{}`), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := loadSnapshot(path); err == nil {
			t.Fatal("expected error for snapshot without domain")
		}
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns nil", func(t *testing.T) {
		t.Parallel()

		overrides, err := loadOverrides("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if overrides != nil {
			t.Error("expected nil overrides for empty path")
		}
	})

	t.Run("loads valid overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "review.json")
		content := `{"reviewed_categories": ["findability"], "suppressed": ["v-abc"]}`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		overrides, err := loadOverrides(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(overrides.ReviewedCategories) != 1 {
			t.Errorf("expected 1 reviewed category, got %d", len(overrides.ReviewedCategories))
		}
		if !overrides.IsSuppressed("v-abc") {
			t.Error("expected v-abc to be suppressed")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := loadOverrides(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Fatal("expected error for missing overrides file")
		}
	})
}

func TestOutputReport(t *testing.T) {
	t.Parallel()

	result := &model.AnalysisResult{
		Domain:     "muster-handwerk.de",
		DateScored: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Overall:    model.OverallScore{Score: model.NewScore(72)},
	}

	t.Run("writes simple report to file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "report.txt")
		cfg := &config.Config{ReportFile: path}

		if err := outputReport(cfg, result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "muster-handwerk.de") {
			t.Error("expected report to mention the domain")
		}
	})

	t.Run("writes JSON report to file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.json")
		cfg := &config.Config{ReportFile: path, JSONReport: true}

		if err := outputReport(cfg, result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), `"domain"`) {
			t.Error("expected JSON report to contain domain field")
		}
	})

	t.Run("markdown refuses unreviewed result", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		unreviewed := &model.AnalysisResult{
			Domain:     "muster-handwerk.de",
			DateScored: time.Now(),
			Categories: []model.CategoryScore{
				{Category: model.CategoryFindability, Score: model.NewScore(80)},
			},
			Overall: model.OverallScore{Score: model.NewScore(80)},
		}
		cfg := &config.Config{ReportFile: path, MarkdownReport: true}

		err := outputReport(cfg, unreviewed)
		if !errors.Is(err, engine.ErrUnreviewedCategories) {
			t.Fatalf("expected ErrUnreviewedCategories, got %v", err)
		}
		if !strings.Contains(err.Error(), "--allow-unreviewed") {
			t.Errorf("expected hint about --allow-unreviewed, got %v", err)
		}
	})

	t.Run("markdown with allow-unreviewed succeeds", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		unreviewed := &model.AnalysisResult{
			Domain:     "muster-handwerk.de",
			DateScored: time.Now(),
			Categories: []model.CategoryScore{
				{Category: model.CategoryFindability, Score: model.NewScore(80)},
			},
			Overall: model.OverallScore{Score: model.NewScore(80)},
		}
		cfg := &config.Config{ReportFile: path, MarkdownReport: true, AllowUnreviewed: true}

		if err := outputReport(cfg, unreviewed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRunScore(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("end to end without database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		snapshotPath := filepath.Join(dir, "findings.json")
		content := `{
			"domain": "muster-handwerk.de",
			"date_collected": "2026-08-01T10:00:00Z",
			"security": {"has_ssl": true, "hsts": true}
		}`
		if err := os.WriteFile(snapshotPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		reportPath := filepath.Join(dir, "report.txt")
		cfg := &config.Config{
			SnapshotFile: snapshotPath,
			ReportFile:   reportPath,
		}

		if err := runScore(context.Background(), cfg, logger); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(reportPath) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "muster-handwerk.de") {
			t.Error("expected report to mention the domain")
		}
	})

	t.Run("saves to database when enabled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		snapshotPath := filepath.Join(dir, "findings.json")
		content := `{"domain": "muster-handwerk.de", "date_collected": "2026-08-01T10:00:00Z"}`
		if err := os.WriteFile(snapshotPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		dbDir := filepath.Join(dir, "db")
		cfg := &config.Config{
			SnapshotFile: snapshotPath,
			ReportFile:   filepath.Join(dir, "report.txt"),
			SaveToDB:     true,
			DBDir:        dbDir,
		}

		if err := runScore(context.Background(), cfg, logger); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		db, err := database.Open(dbDir, database.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		saved, err := db.LatestResult(context.Background(), "muster-handwerk.de")
		if err != nil {
			t.Fatalf("failed to read saved result: %v", err)
		}
		if saved == nil {
			t.Fatal("expected saved result, got nil")
		}
	})

	t.Run("missing snapshot file", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			SnapshotFile: filepath.Join(t.TempDir(), "missing.json"),
		}
		if err := runScore(context.Background(), cfg, logger); err == nil {
			t.Fatal("expected error for missing snapshot")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		snapshotPath := filepath.Join(dir, "findings.json")
		content := `{"domain": "muster-handwerk.de", "date_collected": "2026-08-01T10:00:00Z"}`
		if err := os.WriteFile(snapshotPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := &config.Config{SnapshotFile: snapshotPath, ReportFile: filepath.Join(dir, "r.txt")}
		if err := runScore(ctx, cfg, logger); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestGetVerboseFlag(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	score := NewScoreCmd()
	root.AddCommand(score)

	if getVerboseFlag(score) {
		t.Error("expected verbose to default to false")
	}

	if err := root.PersistentFlags().Set("verbose", "true"); err != nil {
		t.Fatal(err)
	}
	if !getVerboseFlag(score) {
		t.Error("expected verbose true from persistent flag")
	}
}
