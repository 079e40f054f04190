package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/webfacts/presencescore/internal/config"
	"github.com/webfacts/presencescore/internal/database"
	"github.com/webfacts/presencescore/internal/diag"
	"github.com/webfacts/presencescore/internal/engine"
	"github.com/webfacts/presencescore/internal/model"
	"github.com/webfacts/presencescore/internal/report"
)

// NewScoreCmd creates the score command.
func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [snapshot-file]",
		Short: "Score a business from a findings snapshot",
		Long: `Score rates the online presence of a local business.

It reads an automated findings snapshot (JSON), optionally combines it
with reviewer overrides, and produces per-topic, per-category, and
overall scores on a 0-100 scale. Topics with unresolved compliance
violations are capped regardless of their raw score.

Examples:
  # Score a snapshot
  presencescore score findings.json

  # Apply reviewer overrides
  presencescore score findings.json --overrides review.json

  # Output JSON report
  presencescore score --json findings.json

  # Output customer-facing Markdown report (requires reviewer sign-off)
  presencescore score --markdown findings.json

  # Use custom weights
  presencescore score -c myweights.yaml findings.json

Configuration file (.presencescore) example:
  categoryWeights:
    findability: 40
    social_media: 5
  topicWeights:
    search_optimization: 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScoreCmd,
	}

	// Input flags
	cmd.Flags().StringP("overrides", "r", "",
		"Reviewer overrides file (JSON)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .presencescore in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("allow-unreviewed", false,
		"Skip the reviewer sign-off gate for Markdown output (internal use)")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not save the result to the history database")

	return cmd
}

// runScoreCmd executes the score command.
func runScoreCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := diag.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScore(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.SnapshotFile = args[0]
	}

	var err error

	cfg.OverridesFile, err = cmd.Flags().GetString("overrides")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load weight overrides from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Weights, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.AllowUnreviewed, err = cmd.Flags().GetBool("allow-unreviewed")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runScore executes the scoring run.
func runScore(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	raw, err := loadSnapshot(cfg.SnapshotFile)
	if err != nil {
		return err
	}

	overrides, err := loadOverrides(cfg.OverridesFile)
	if err != nil {
		return err
	}

	logger.Info("starting scoring run",
		"domain", raw.Domain,
		"snapshot", cfg.SnapshotFile,
		"overrides", cfg.OverridesFile,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.HistoryDB
	if cfg.SaveToDB {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	engineOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithCategoryWeights(cfg.CategoryWeights()),
		engine.WithTopicWeights(cfg.TopicWeights()),
	}
	if cfg.Verbose {
		engineOpts = append(engineOpts, engine.WithRecorder(diag.NewLogRecorder(logger)))
	}

	eng := engine.New(engineOpts...)

	startTime := time.Now()
	result, err := eng.Evaluate(ctx, raw, overrides)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	logger.Info("scoring completed",
		"domain", result.Domain,
		"overall", result.Overall.Score.String(),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	if err := outputReport(cfg, result); err != nil {
		return err
	}

	return saveResult(ctx, db, result, logger)
}

// loadSnapshot reads and parses the findings snapshot.
func loadSnapshot(path string) (*model.RawFindings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided snapshot path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var raw model.RawFindings
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if raw.Domain == "" {
		return nil, fmt.Errorf("snapshot %s has no domain", path)
	}

	return &raw, nil
}

// loadOverrides reads and parses the reviewer overrides file.
// Returns nil without error when no overrides file was given.
func loadOverrides(path string) (*model.ManualOverrides, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided overrides path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides %s: %w", path, err)
	}

	var overrides model.ManualOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse overrides %s: %w", path, err)
	}

	return &overrides, nil
}

// outputReport outputs the analysis result in the requested format.
func outputReport(cfg *config.Config, result *model.AnalysisResult) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports may contain reviewer annotations that should only be
		// readable by the owner.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output,
			report.WithAllowUnreviewed(cfg.AllowUnreviewed),
		)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	if _, err := writer.Write(result); err != nil {
		if errors.Is(err, engine.ErrUnreviewedCategories) {
			return fmt.Errorf("%w (use --allow-unreviewed for internal inspection)", err)
		}
		return err
	}
	return nil
}

// saveResult saves the analysis result to the database if enabled.
// If db is nil, this function is a no-op.
func saveResult(ctx context.Context, db *database.HistoryDB, result *model.AnalysisResult, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	id, err := db.SaveResult(ctx, result)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	logger.Info("result saved to database", "domain", result.Domain, "id", id)
	return nil
}
