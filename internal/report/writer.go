package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/nao1215/dotnetvuln/internal/model"
)

// Exit statuses decided by the findings.
const (
	// ExitClean means no vulnerable packages were found.
	ExitClean = 0

	// ExitVulnerable means at least one vulnerable package was found.
	ExitVulnerable = 1
)

// AbsentPlaceholder is printed wherever the source document had no value.
const AbsentPlaceholder = "None"

// Format is an output format name.
type Format string

const (
	// FormatText is the default line-oriented summary.
	FormatText Format = "text"

	// FormatJSON is structured JSON output.
	FormatJSON Format = "json"

	// FormatMarkdown is GitHub Flavored Markdown output.
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown}

// Valid reports whether f is a supported output format.
func (f Format) Valid() bool {
	return lo.Contains(Formats, f)
}

// Writer defines the interface for report output.
// Implementations write findings in various formats.
type Writer interface {
	// Write outputs the findings to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(findings []model.Finding) (int, error)
}

// NewWriter returns the Writer for format, writing to output.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q (supported: %s)", format, formatList())
	}
}

// ExitCode returns ExitClean for no findings and ExitVulnerable otherwise.
func ExitCode(findings []model.Finding) int {
	if len(findings) == 0 {
		return ExitClean
	}
	return ExitVulnerable
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// valueOrPlaceholder returns *s, or AbsentPlaceholder when s is nil.
func valueOrPlaceholder(s *string) string {
	return lo.FromPtrOr(s, AbsentPlaceholder)
}

func formatList() string {
	return strings.Join(lo.Map(Formats, func(f Format, _ int) string { return string(f) }), ", ")
}
