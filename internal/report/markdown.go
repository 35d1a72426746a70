package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/dotnetvuln/internal/model"
)

// MarkdownWriter outputs findings in Markdown format.
// This format is designed for pull request comments and CI job summaries.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables and lists
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the findings in Markdown format.
func (w *MarkdownWriter) Write(findings []model.Finding) (int, error) {
	md := markdown.NewMarkdown(w.output)
	summary := model.NewSummary(findings)

	md.H1("Vulnerable Package Report")
	md.PlainText("")

	w.writeAlert(md, summary)
	w.writeSummary(md, summary)
	w.writeFindings(md, findings)
	w.writeAdvisories(md, findings)

	return len(md.String()), md.Build()
}

// writeAlert writes an alert based on the most severe advisory found.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary model.Summary) {
	switch {
	case summary.VulnerablePackages == 0:
		md.Tip(NoFindingsMessage)
	case summary.Count(model.SeverityCritical) > 0:
		md.Cautionf(
			"%d critical advisory(ies) detected across %d package(s).",
			summary.Count(model.SeverityCritical), summary.VulnerablePackages,
		)
	case summary.Count(model.SeverityHigh) > 0:
		md.Warningf(
			"%d high severity advisory(ies) detected across %d package(s).",
			summary.Count(model.SeverityHigh), summary.VulnerablePackages,
		)
	default:
		md.Importantf("%d vulnerable package(s) detected.", summary.VulnerablePackages)
	}
	md.PlainText("")
}

// writeSummary writes the severity summary table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, summary model.Summary) {
	md.H2("Summary")
	md.PlainText("")

	rows := [][]string{
		{"Vulnerable packages", strconv.Itoa(summary.VulnerablePackages)},
		{"Affected projects", strconv.Itoa(summary.Projects)},
		{"Vulnerabilities", strconv.Itoa(summary.Vulnerabilities)},
	}
	for _, s := range model.Severities {
		rows = append(rows, []string{s.String(), strconv.Itoa(summary.Count(s))})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFindings writes one table row per finding, in traversal order.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, findings []model.Finding) {
	md.H2("Findings")
	md.PlainText("")

	if len(findings) == 0 {
		md.PlainText(NoFindingsMessage)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = []string{
			valueOrPlaceholder(f.Project),
			valueOrPlaceholder(f.Framework),
			"`" + valueOrPlaceholder(f.Package) + "`",
			valueOrPlaceholder(f.Version),
			string(f.Group),
			f.HighestSeverity().String(),
			strconv.Itoa(f.Count),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Project", "Framework", "Package", "Version", "Dependency", "Severity", "Vulnerabilities"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAdvisories lists every advisory that carries a URL.
func (w *MarkdownWriter) writeAdvisories(md *markdown.Markdown, findings []model.Finding) {
	var items []string
	for _, f := range findings {
		for _, a := range f.Advisories {
			if a.AdvisoryURL == nil {
				continue
			}
			items = append(items, fmt.Sprintf("%s@%s (%s): [%s](%s)",
				valueOrPlaceholder(f.Package),
				valueOrPlaceholder(f.Version),
				a.Severity,
				*a.AdvisoryURL,
				*a.AdvisoryURL,
			))
		}
	}
	if len(items) == 0 {
		return
	}

	md.H2("Advisories")
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}
