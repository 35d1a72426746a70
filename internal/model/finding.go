package model

// Finding is a package that carries one or more vulnerability records.
// Absent source values stay nil and are rendered by the report writers.
type Finding struct {
	Project   *string      `json:"project"`
	Framework *string      `json:"framework"`
	Package   *string      `json:"package"`
	Version   *string      `json:"version"`
	Group     PackageGroup `json:"group"`

	// Count is the number of vulnerability records on the source package.
	// It is always at least 1.
	Count int `json:"count"`

	// Advisories are the records themselves, in document order.
	Advisories []Vulnerability `json:"advisories"`
}

// HighestSeverity returns the most severe advisory level of the finding.
func (f Finding) HighestSeverity() Severity {
	highest := SeverityUnknown
	for _, a := range f.Advisories {
		if a.Severity > highest {
			highest = a.Severity
		}
	}
	return highest
}
