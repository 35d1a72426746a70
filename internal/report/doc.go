// Package report renders vulnerability findings and decides the exit status.
//
// This package contains writers for different output formats:
//   - TextWriter: The line-oriented summary printed by default
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for pull request comments
//
// Design decision: The exit status depends only on whether findings exist,
// never on the output format, so CI pipelines behave the same whichever
// format they ask for.
package report
