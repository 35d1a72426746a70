package model

import "strings"

// Severity represents the risk level NuGet assigns to a vulnerability advisory.
//
// Design decision: We use iota-based constants rather than string constants
// so severities can be ordered and compared. The String() method returns the
// spelling used by the dotnet CLI.
type Severity int

const (
	// SeverityUnknown is used when an advisory record has no recognizable severity.
	// Records of arbitrary shape are still counted; they simply land here.
	SeverityUnknown Severity = iota

	// SeverityLow indicates an advisory with limited impact.
	SeverityLow

	// SeverityModerate indicates an advisory that warrants attention.
	// GitHub advisories call this level "Moderate"; "Medium" is accepted as an alias.
	SeverityModerate

	// SeverityHigh indicates a serious advisory.
	SeverityHigh

	// SeverityCritical indicates an advisory that requires immediate attention.
	SeverityCritical
)

// Severities lists every severity from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityModerate,
	SeverityLow,
	SeverityUnknown,
}

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityModerate:
		return "Moderate"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities appear as
// strings in JSON reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	*s = ParseSeverity(string(text))
	return nil
}

// ParseSeverity parses a severity string case-insensitively.
// Unrecognized values return SeverityUnknown.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "moderate", "medium":
		return SeverityModerate
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityUnknown
	}
}
