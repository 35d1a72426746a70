// Package main provides the entry point for the dotnetvuln CLI.
//
// dotnetvuln reads the JSON output of
// `dotnet list package --vulnerable --include-transitive --format json`
// from standard input, prints every package with known vulnerabilities
// and exits with status 1 when any were found.
//
// Usage:
//
//	dotnet list package --vulnerable --include-transitive --format json | dotnetvuln
//	dotnetvuln --input audit.json --format markdown
//
// See --help for all available options.
package main

// main is the entry point for dotnetvuln.
func main() {
	Execute()
}
