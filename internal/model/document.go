package model

// Document is the decoded output of
// `dotnet list package --vulnerable --include-transitive --format json`.
// Keys beyond the ones modelled here are ignored.
type Document struct {
	// Version is the report schema version emitted by the dotnet CLI.
	Version *int

	// Parameters echoes the options the report was produced with.
	Parameters *string

	// Problems are warnings the dotnet CLI attached to the report,
	// typically projects that were not restored.
	Problems []Problem

	// Projects are the scanned projects in document order.
	Projects []Project
}

// Problem is a warning or error entry from the report's "problems" array.
type Problem struct {
	Project *string
	Level   *string
	Text    *string
}

// Project is a single scanned project.
type Project struct {
	Name       *string
	Path       *string
	Frameworks []Framework
}

// Framework is a target framework of a project (for example "net8.0").
type Framework struct {
	Framework          *string
	TopLevelPackages   []Package
	TransitivePackages []Package
}

// Packages returns the packages of the given group in document order.
func (f Framework) Packages(group PackageGroup) []Package {
	switch group {
	case GroupTopLevel:
		return f.TopLevelPackages
	case GroupTransitive:
		return f.TransitivePackages
	default:
		return nil
	}
}

// Package is a resolved NuGet package reference.
type Package struct {
	Name             *string
	RequestedVersion *string
	ResolvedVersion  *string

	// Vulnerabilities holds one entry per advisory record. Only the number of
	// records is significant; severity and URL are read when present.
	Vulnerabilities []Vulnerability
}

// Vulnerability is a single advisory record attached to a package.
type Vulnerability struct {
	// Raw is the record exactly as decoded. Its shape is not constrained.
	Raw any `json:"-"`

	// Severity is read from the record's "severity" key.
	Severity Severity `json:"severity"`

	// AdvisoryURL is read from the record's "advisoryurl" key.
	AdvisoryURL *string `json:"advisoryUrl"`
}

// PackageGroup identifies which package list of a framework a package came from.
type PackageGroup string

const (
	// GroupTopLevel is the "topLevelPackages" list: direct references.
	GroupTopLevel PackageGroup = "topLevel"

	// GroupTransitive is the "transitivePackages" list.
	GroupTransitive PackageGroup = "transitive"
)

// PackageGroups lists the groups in scan order. Top-level packages are
// always visited before transitive ones.
var PackageGroups = []PackageGroup{GroupTopLevel, GroupTransitive}
