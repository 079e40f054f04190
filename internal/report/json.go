package report

import (
	"encoding/json"
	"io"

	"github.com/webfacts/presencescore/internal/model"
)

// JSONWriter outputs results in JSON format.
// This format is designed for tool integration and programmatic
// processing and is not customer-facing; it bypasses the sign-off gate
// so that unreviewed results remain inspectable.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because it is sufficient for our needs and provides
// consistent behavior across Go versions.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is the scorer version embedded in the output, if set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// WithVersion embeds the scorer version in the JSON envelope.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONEnvelope wraps a result with output metadata.
//
// Design decision: We wrap the result rather than modifying AnalysisResult
// because this allows us to add output-specific fields without polluting
// the core data structure.
type JSONEnvelope struct {
	// Version is the scorer version that generated this result.
	Version string `json:"version,omitempty"`

	// Result is the full analysis result.
	Result *model.AnalysisResult `json:"result"`
}

// Write outputs the result in JSON format.
func (w *JSONWriter) Write(result *model.AnalysisResult) (int, error) {
	var v any = result
	if w.version != "" {
		v = &JSONEnvelope{Version: w.version, Result: result}
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output.
	data = append(data, '\n')
	return w.output.Write(data)
}
