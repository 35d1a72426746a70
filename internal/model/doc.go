// Package model defines the core data structures used throughout dotnetvuln.
//
// This package contains the following main types:
//   - Document: The decoded output of `dotnet list package --vulnerable`
//   - Project, Framework, Package: The fixed three-level nesting inside a Document
//   - Vulnerability: A single advisory record attached to a Package
//   - Finding: A package that carries at least one vulnerability record
//   - Summary: Aggregate counts over a sequence of findings
//
// Design decision: Every scalar read from the input is an explicit optional
// value (*string or *int). A missing key is a representable state rather than
// a lookup failure, so traversal code never has to guard against it.
//
// The models are designed to be serializable to JSON for report output.
package model
