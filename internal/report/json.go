package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/dotnetvuln/internal/model"
)

// JSONWriter outputs findings in JSON format.
// This format is designed for tool integration and programmatic processing.
// Absent values are written as null.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
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
	return WithIndent("", "  ")
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

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// Vulnerable is true when at least one finding exists.
	Vulnerable bool `json:"vulnerable"`

	// Summary aggregates the findings.
	Summary model.Summary `json:"summary"`

	// Findings are the vulnerable packages in traversal order.
	Findings []model.Finding `json:"findings"`
}

// NewJSONReport builds the JSON document for findings.
func NewJSONReport(findings []model.Finding) *JSONReport {
	if findings == nil {
		findings = []model.Finding{}
	}
	return &JSONReport{
		Vulnerable: len(findings) > 0,
		Summary:    model.NewSummary(findings),
		Findings:   findings,
	}
}

// Write outputs the findings wrapped in a JSONReport.
func (w *JSONWriter) Write(findings []model.Finding) (int, error) {
	return w.writeJSON(NewJSONReport(findings))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
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

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
