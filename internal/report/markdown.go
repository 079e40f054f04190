package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/webfacts/presencescore/internal/engine"
	"github.com/webfacts/presencescore/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This is the customer-facing format: it refuses to render a result whose
// scored categories lack reviewer sign-off unless explicitly overridden.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, GitHub-flavored
// alerts, and mermaid charts.
type MarkdownWriter struct {
	baseWriter

	// allowUnreviewed bypasses the sign-off gate, for internal previews.
	allowUnreviewed bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithAllowUnreviewed disables the sign-off gate.
func WithAllowUnreviewed(allow bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.allowUnreviewed = allow
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the result in Markdown format.
// Returns engine.ErrUnreviewedCategories without writing anything when the
// result is not exportable.
func (w *MarkdownWriter) Write(result *model.AnalysisResult) (int, error) {
	if !w.allowUnreviewed {
		if err := engine.CheckExportable(result); err != nil {
			return 0, err
		}
	}

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeCategories(md, result)
	w.writeViolations(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H1("Online Presence Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Domain", "`" + result.Domain + "`"},
			{"Scored", result.DateScored.Format("2006-01-02 15:04:05 MST")},
			{"Overall Score", "**" + result.Overall.Score.String() + "**"},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeCategories(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Category Breakdown")
	md.PlainText("")

	rows := make([][]string, 0, len(result.Categories))
	for _, cs := range result.Categories {
		weight := "-"
		if !cs.Score.IsNoData() {
			weight = strconv.FormatFloat(cs.EffectiveWeight, 'f', 1, 64) + "%"
		}
		rows = append(rows, []string{cs.Category.DisplayName(), cs.Score.String(), weight})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score", "Effective Weight"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeTopicTables(md, result)
	w.writeWeightChart(md, result)
}

func (w *MarkdownWriter) writeTopicTables(md *markdown.Markdown, result *model.AnalysisResult) {
	rows := make([][]string, 0, len(result.Topics))
	for _, ts := range result.Topics {
		rows = append(rows, []string{
			ts.Topic.DisplayName(),
			ts.Topic.Category().DisplayName(),
			ts.Score.String(),
		})
	}
	md.H3("Topics")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Topic", "Category", "Score"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeWeightChart renders the effective category weights as a mermaid
// pie chart so redistribution after missing data is visible at a glance.
func (w *MarkdownWriter) writeWeightChart(md *markdown.Markdown, result *model.AnalysisResult) {
	if len(result.Overall.EffectiveWeights) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Effective Category Weights"),
		piechart.WithShowData(true),
	)
	for _, cs := range result.Categories {
		weight, ok := result.Overall.EffectiveWeights[cs.Category]
		if !ok || weight <= 0 {
			continue
		}
		chart.LabelAndIntValue(cs.Category.DisplayName(), uint64(weight+0.5))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeViolations(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Violations")
	md.PlainText("")

	if len(result.Violations) == 0 {
		md.Tip("No violations detected.")
		md.PlainText("")
		return
	}

	counts := result.SeverityCounts()
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(counts[model.SeverityCritical])},
			{"🟠 High", strconv.Itoa(counts[model.SeverityHigh])},
			{"🟡 Medium", strconv.Itoa(counts[model.SeverityMedium])},
			{"🔵 Low", strconv.Itoa(counts[model.SeverityLow])},
		},
	})
	md.PlainText("")

	w.writeViolationAlert(md, result)

	rows := make([][]string, 0, len(result.Violations))
	for _, vs := range result.Violations {
		rows = append(rows, []string{
			strings.ToUpper(vs.Violation.Severity.String()),
			vs.Violation.Topic.DisplayName(),
			vs.Violation.Description,
			violationStateCell(vs),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Topic", "Description", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

func violationStateCell(vs model.ViolationStatus) string {
	switch {
	case vs.NeutralizedBy != "":
		return "neutralized (" + vs.NeutralizedBy + ")"
	case vs.Violation.Suppressed:
		return "suppressed"
	case vs.CountsTowardCap:
		return "active"
	default:
		return "informational"
	}
}

func (w *MarkdownWriter) writeViolationAlert(md *markdown.Markdown, result *model.AnalysisResult) {
	counts := result.SeverityCounts()
	switch {
	case result.HasUnresolvedCritical():
		md.Cautionf(
			"Critical compliance issues detected! %d critical violation(s) require immediate attention.",
			counts[model.SeverityCritical],
		)
	case result.ActiveViolationCount() > 0:
		md.Warningf(
			"%d violation(s) currently cap category scores.",
			result.ActiveViolationCount(),
		)
	default:
		md.Note("All listed violations are neutralized, suppressed, or informational.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by presencescore*")
}
