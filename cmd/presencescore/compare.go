package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/webfacts/presencescore/internal/config"
	"github.com/webfacts/presencescore/internal/database"
	"github.com/webfacts/presencescore/internal/model"
)

// Constants for score direction and summary messages.
const (
	scoreDirectionImproved  = "improved"
	scoreDirectionWorsened  = "worsened"
	scoreDirectionUnchanged = "unchanged"
	noViolationsMessage     = "No violations"
)

// NewCompareCmd creates the compare command.
// This command compares scoring runs with historical data stored in the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [domain]",
		Short: "Compare scoring runs with historical data",
		Long: `Compare displays differences between the current and previous scoring runs.

This command retrieves historical runs from the database and shows:
- Changes in the overall and per-category scores
- New violations that appeared since the last run
- Resolved violations that are no longer present

The comparison requires at least two runs in the database for the
specified domain. Use 'presencescore score' to score and save results.

Examples:
  # Compare latest two runs for a domain
  presencescore compare muster-handwerk.de

  # List run history for a domain
  presencescore compare --list muster-handwerk.de

  # Compare with the first run after a specific date
  presencescore compare --since "2026-01-01" muster-handwerk.de

  # Output comparison in JSON format
  presencescore compare --json muster-handwerk.de

  # List all scored domains in the database
  presencescore compare --list-domains`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List run history for the specified domain")
	cmd.Flags().BoolP("list-domains", "L", false,
		"List all scored domains in the database")

	// Comparison target flags
	cmd.Flags().StringP("since", "s", "",
		"Compare with the first run after this date (format: YYYY-MM-DD)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	listDomains, err := cmd.Flags().GetBool("list-domains")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database; this avoids lock
	// contention when validation fails.
	var domain string
	if !listDomains {
		if len(args) == 0 {
			return errors.New("domain is required (use --list-domains to see available domains)")
		}
		domain = args[0]
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if listDomains {
		return listScoredDomains(ctx, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listRunHistory(ctx, db, domain)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	sinceDate, err := cmd.Flags().GetString("since")
	if err != nil {
		return err
	}

	return runComparison(ctx, db, domain, sinceDate, jsonOutput)
}

// listScoredDomains lists all domains that have runs in the database.
func listScoredDomains(ctx context.Context, db *database.HistoryDB) error {
	domains, err := db.ListDomains(ctx)
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	if len(domains) == 0 {
		fmt.Println("No scored domains found in the database.")
		fmt.Println("\nUse 'presencescore score <snapshot>' to score a business.")
		return nil
	}

	fmt.Printf("Scored domains (%d):\n\n", len(domains))
	for _, domain := range domains {
		fmt.Printf("  • %s\n", domain)
	}
	fmt.Println("\nUse 'presencescore compare --list <domain>' to see run history for a domain.")

	return nil
}

// listRunHistory lists all runs for a specific domain.
func listRunHistory(ctx context.Context, db *database.HistoryDB, domain string) error {
	runs, err := db.History(ctx, domain)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Printf("No run history found for %s\n", domain)
		fmt.Println("\nUse 'presencescore score' to score this business.")
		return nil
	}

	fmt.Printf("Run history for %s (%d runs):\n\n", domain, len(runs))
	fmt.Printf("  %-6s  %-20s  %-8s  %s\n", "ID", "Date", "Overall", "Violations")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, meta := range runs {
		fmt.Printf("  %-6d  %-20s  %-8s  %s\n",
			meta.ID,
			meta.DateScored.Format("2006-01-02 15:04:05"),
			meta.OverallScore,
			formatSeveritySummary(meta.SeveritySummary),
		)
	}

	fmt.Println("\nUse 'presencescore compare <domain>' to compare the latest two runs.")

	return nil
}

// formatSeveritySummary formats the severity summary map into a human-readable string.
func formatSeveritySummary(summary map[string]int) string {
	if summary == nil {
		return "N/A"
	}

	var parts []string
	if v := summary["critical"]; v > 0 {
		parts = append(parts, fmt.Sprintf("C:%d", v))
	}
	if v := summary["high"]; v > 0 {
		parts = append(parts, fmt.Sprintf("H:%d", v))
	}
	if v := summary["medium"]; v > 0 {
		parts = append(parts, fmt.Sprintf("M:%d", v))
	}
	if v := summary["low"]; v > 0 {
		parts = append(parts, fmt.Sprintf("L:%d", v))
	}

	if len(parts) == 0 {
		return noViolationsMessage
	}
	return strings.Join(parts, " ")
}

// runComparison performs the actual comparison between runs.
func runComparison(ctx context.Context, db *database.HistoryDB, domain, sinceDate string, jsonOutput bool) error {
	results, err := db.ResultHistory(ctx, domain)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(results) == 0 {
		return fmt.Errorf("no run history found for %s", domain)
	}
	if len(results) < 2 && sinceDate == "" {
		return fmt.Errorf("at least 2 runs are required for comparison (found %d)", len(results))
	}

	// Latest run is always the current one
	current := results[0]
	var previous *model.AnalysisResult

	if sinceDate != "" {
		parsedDate, err := time.Parse("2006-01-02", sinceDate)
		if err != nil {
			return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
		}

		// Results are sorted newest first, so iterate in reverse to find
		// the oldest run at or after the date.
		for i := len(results) - 1; i >= 0; i-- {
			r := results[i]
			if r.DateScored.After(parsedDate) || r.DateScored.Equal(parsedDate) {
				previous = r
				break
			}
		}
		if previous == nil {
			return fmt.Errorf("no runs found since %s", sinceDate)
		}
		if previous == current {
			return fmt.Errorf("only one run found since %s; at least 2 runs are required for comparison", sinceDate)
		}
	} else {
		previous = results[1]
	}

	comparison := compareResults(previous, current)

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	return outputComparisonText(comparison)
}

// ComparisonResult holds the result of comparing two scoring runs.
type ComparisonResult struct {
	// Domain is the audited business domain.
	Domain string `json:"domain"`

	// PreviousRun contains metadata about the previous run.
	PreviousRun RunSummary `json:"previous_run"`

	// CurrentRun contains metadata about the current run.
	CurrentRun RunSummary `json:"current_run"`

	// CategoryChanges holds per-category score deltas, in display order.
	CategoryChanges []CategoryChange `json:"category_changes,omitempty"`

	// NewViolations contains violations that are new in the current run.
	NewViolations []model.ViolationStatus `json:"new_violations,omitempty"`

	// ResolvedViolations contains violations from the previous run that
	// are no longer present.
	ResolvedViolations []model.ViolationStatus `json:"resolved_violations,omitempty"`

	// UnchangedCount is the number of violations that remain unchanged.
	UnchangedCount int `json:"unchanged_count"`

	// Direction is "improved", "worsened", or "unchanged", based on the
	// overall score delta.
	Direction string `json:"direction"`
}

// RunSummary contains metadata about a run for comparison display.
type RunSummary struct {
	// DateScored is when the run was produced.
	DateScored time.Time `json:"date_scored"`

	// Overall is the overall score of the run.
	Overall model.Score `json:"overall"`

	// ActiveViolations is the number of violations counting toward caps.
	ActiveViolations int `json:"active_violations"`
}

// CategoryChange describes the score change of one category between runs.
type CategoryChange struct {
	// Category identifies the grouping.
	Category model.Category `json:"category"`

	// Previous is the category score in the previous run.
	Previous model.Score `json:"previous"`

	// Current is the category score in the current run.
	Current model.Score `json:"current"`
}

// compareResults compares two analysis results and generates a comparison.
func compareResults(previous, current *model.AnalysisResult) *ComparisonResult {
	result := &ComparisonResult{
		Domain: current.Domain,
		PreviousRun: RunSummary{
			DateScored:       previous.DateScored,
			Overall:          previous.Overall.Score,
			ActiveViolations: previous.ActiveViolationCount(),
		},
		CurrentRun: RunSummary{
			DateScored:       current.DateScored,
			Overall:          current.Overall.Score,
			ActiveViolations: current.ActiveViolationCount(),
		},
	}

	// Category deltas in display order
	for _, c := range model.AllCategories() {
		prevScore, prevOK := previous.CategoryScoreFor(c)
		curScore, curOK := current.CategoryScoreFor(c)
		if !prevOK && !curOK {
			continue
		}
		change := CategoryChange{Category: c, Previous: model.NoData(), Current: model.NoData()}
		if prevOK {
			change.Previous = prevScore.Score
		}
		if curOK {
			change.Current = curScore.Score
		}
		result.CategoryChanges = append(result.CategoryChanges, change)
	}

	// Build violation maps keyed by stable ID
	previousViolations := make(map[model.ViolationID]model.ViolationStatus)
	currentViolations := make(map[model.ViolationID]model.ViolationStatus)
	for _, vs := range previous.Violations {
		previousViolations[vs.Violation.ID] = vs
	}
	for _, vs := range current.Violations {
		currentViolations[vs.Violation.ID] = vs
	}

	for id, vs := range currentViolations {
		if _, exists := previousViolations[id]; !exists {
			result.NewViolations = append(result.NewViolations, vs)
		}
	}
	for id, vs := range previousViolations {
		if _, exists := currentViolations[id]; !exists {
			result.ResolvedViolations = append(result.ResolvedViolations, vs)
		} else {
			result.UnchangedCount++
		}
	}

	result.Direction = scoreDirection(previous.Overall.Score, current.Overall.Score)

	return result
}

// scoreDirection determines the overall change direction between two scores.
// A run gaining data counts as improved; a run losing all data as worsened.
func scoreDirection(previous, current model.Score) string {
	prevValue, prevOK := previous.ValueOK()
	curValue, curOK := current.ValueOK()

	switch {
	case !prevOK && !curOK:
		return scoreDirectionUnchanged
	case !prevOK:
		return scoreDirectionImproved
	case !curOK:
		return scoreDirectionWorsened
	case curValue > prevValue:
		return scoreDirectionImproved
	case curValue < prevValue:
		return scoreDirectionWorsened
	default:
		return scoreDirectionUnchanged
	}
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Score Comparison: %s\n", result.Domain)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nScore Status: %s\n", formatScoreDirection(result.Direction))

	fmt.Printf("\nPrevious run: %s  (overall %s)\n",
		result.PreviousRun.DateScored.Format("2006-01-02 15:04:05"),
		result.PreviousRun.Overall)
	fmt.Printf("Current run:  %s  (overall %s)\n",
		result.CurrentRun.DateScored.Format("2006-01-02 15:04:05"),
		result.CurrentRun.Overall)

	if len(result.CategoryChanges) > 0 {
		fmt.Println("\nCategory Scores:")
		fmt.Printf("  %-22s  %-10s  %-10s  %s\n", "Category", "Previous", "Current", "Change")
		fmt.Println("  " + strings.Repeat("-", 55))
		for _, change := range result.CategoryChanges {
			fmt.Printf("  %-22s  %-10s  %-10s  %s\n",
				change.Category.DisplayName(),
				change.Previous,
				change.Current,
				formatScoreDelta(change.Previous, change.Current),
			)
		}
	}

	if len(result.NewViolations) > 0 {
		fmt.Printf("\nNew Violations (%d):\n", len(result.NewViolations))
		for _, vs := range result.NewViolations {
			fmt.Printf("  [+] [%s] %s\n", vs.Violation.Severity, vs.Violation.Description)
		}
	}

	if len(result.ResolvedViolations) > 0 {
		fmt.Printf("\nResolved Violations (%d):\n", len(result.ResolvedViolations))
		for _, vs := range result.ResolvedViolations {
			fmt.Printf("  [-] [%s] %s\n", vs.Violation.Severity, vs.Violation.Description)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d violations\n", result.UnchangedCount)
	}

	return nil
}

// formatScoreDirection formats the change direction for display.
func formatScoreDirection(direction string) string {
	switch direction {
	case scoreDirectionImproved:
		return "IMPROVED (score increased)"
	case scoreDirectionWorsened:
		return "WORSENED (score decreased)"
	default:
		return "UNCHANGED"
	}
}

// formatScoreDelta formats the score change between two runs for display.
func formatScoreDelta(previous, current model.Score) string {
	prevValue, prevOK := previous.ValueOK()
	curValue, curOK := current.ValueOK()

	if !prevOK || !curOK {
		return "-"
	}

	delta := curValue - prevValue
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}
	return strconv.Itoa(delta)
}
