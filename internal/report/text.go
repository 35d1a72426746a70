package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/dotnetvuln/internal/model"
)

// Messages printed by TextWriter.
const (
	// NoFindingsMessage is the only line printed when nothing is vulnerable.
	NoFindingsMessage = "No vulnerable packages detected."

	// FindingsHeader precedes the finding lines.
	FindingsHeader = "Vulnerable packages detected:"
)

// TextWriter outputs the plain line-oriented summary.
//
// The finding line always says "vulnerability/vulnerabilities", including
// for a count of 1. Scripts parse this output, so the wording is fixed.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the header and one line per finding, or NoFindingsMessage.
func (w *TextWriter) Write(findings []model.Finding) (int, error) {
	var sb strings.Builder

	if len(findings) == 0 {
		sb.WriteString(NoFindingsMessage)
		sb.WriteString("\n")
		return io.WriteString(w.output, sb.String())
	}

	sb.WriteString(FindingsHeader)
	sb.WriteString("\n")
	for _, f := range findings {
		sb.WriteString(FormatFinding(f))
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}

// FormatFinding renders a single finding line:
//
//	- {project} ({framework}): {package}@{version} ({count} vulnerability/vulnerabilities)
func FormatFinding(f model.Finding) string {
	return fmt.Sprintf("- %s (%s): %s@%s (%d vulnerability/vulnerabilities)",
		valueOrPlaceholder(f.Project),
		valueOrPlaceholder(f.Framework),
		valueOrPlaceholder(f.Package),
		valueOrPlaceholder(f.Version),
		f.Count,
	)
}
