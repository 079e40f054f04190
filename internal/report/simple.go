package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/webfacts/presencescore/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display and is the default;
// it is an internal working view and bypasses the sign-off gate.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because it works in all terminals and is easy
// to pipe to files or other tools.
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output, including
	// neutralized and suppressed violations.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *model.AnalysisResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeCategories(&sb, result)
	w.writeViolations(&sb, result)
	w.writeReviewState(&sb, result)

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    ONLINE PRESENCE REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Domain:        %s\n", result.Domain))
	sb.WriteString(fmt.Sprintf("Scored:        %s\n", result.DateScored.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Overall Score: %s\n", result.Overall.Score))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeCategories(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CATEGORY BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, cs := range result.Categories {
		sb.WriteString(fmt.Sprintf("  %-24s %8s", cs.Category.DisplayName(), cs.Score))
		if !cs.Score.IsNoData() {
			sb.WriteString(fmt.Sprintf("   (weight %.1f%%)", cs.EffectiveWeight))
		}
		sb.WriteString("\n")

		for _, topic := range model.TopicsInCategory(cs.Category) {
			sb.WriteString(fmt.Sprintf("    - %-22s %6s\n", topic.DisplayName(), result.TopicScoreFor(topic)))
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeViolations(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("VIOLATIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	counts := result.SeverityCounts()
	sb.WriteString(fmt.Sprintf("  CRITICAL: %d\n", counts[model.SeverityCritical]))
	sb.WriteString(fmt.Sprintf("  HIGH:     %d\n", counts[model.SeverityHigh]))
	sb.WriteString(fmt.Sprintf("  MEDIUM:   %d\n", counts[model.SeverityMedium]))
	sb.WriteString(fmt.Sprintf("  LOW:      %d\n", counts[model.SeverityLow]))
	sb.WriteString(fmt.Sprintf("  Counting toward caps: %d\n", result.ActiveViolationCount()))
	sb.WriteString("\n")

	for _, vs := range result.Violations {
		if !w.verbose && !vs.CountsTowardCap {
			continue
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s: %s%s\n",
			strings.ToUpper(vs.Violation.Severity.String()),
			vs.Violation.Topic.DisplayName(),
			vs.Violation.Description,
			violationState(vs),
		))
	}
	sb.WriteString("\n")
}

// violationState annotates non-counting violations so a reviewer can see
// why an entry is on the list but not in the cap count.
func violationState(vs model.ViolationStatus) string {
	switch {
	case vs.NeutralizedBy != "":
		return " (neutralized by " + vs.NeutralizedBy + ")"
	case vs.Violation.Suppressed:
		return " (suppressed)"
	case !vs.CountsTowardCap:
		return " (not cap-relevant)"
	default:
		return ""
	}
}

func (w *SimpleWriter) writeReviewState(sb *strings.Builder, result *model.AnalysisResult) {
	unreviewed := result.UnreviewedCategories()
	if len(unreviewed) == 0 {
		sb.WriteString("All scored categories are reviewed. Result is exportable.\n")
		return
	}
	names := make([]string, 0, len(unreviewed))
	for _, c := range unreviewed {
		names = append(names, c.DisplayName())
	}
	sb.WriteString(fmt.Sprintf("NOT EXPORTABLE: awaiting review of %s\n", strings.Join(names, ", ")))
}
