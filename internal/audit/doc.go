// Package audit extracts vulnerable packages from a dotnet audit Document.
//
// The traversal visits projects, then frameworks, then the top-level package
// list followed by the transitive package list, all in document order. Every
// package with at least one vulnerability record becomes a model.Finding.
// Nothing is deduplicated and the Document is never modified.
package audit
