package model

import "github.com/samber/lo"

// Summary aggregates a sequence of findings for the JSON and Markdown reports.
type Summary struct {
	// VulnerablePackages is the number of findings.
	VulnerablePackages int `json:"vulnerablePackages"`

	// Vulnerabilities is the sum of all finding counts.
	Vulnerabilities int `json:"vulnerabilities"`

	// Projects is the number of distinct projects with at least one finding.
	Projects int `json:"projects"`

	// BySeverity counts advisory records per severity name.
	// Every severity is present, including zero counts.
	BySeverity map[string]int `json:"bySeverity"`
}

// NewSummary computes a Summary from findings.
func NewSummary(findings []Finding) Summary {
	bySeverity := make(map[string]int, len(Severities))
	for _, s := range Severities {
		bySeverity[s.String()] = 0
	}
	for _, f := range findings {
		for _, a := range f.Advisories {
			bySeverity[a.Severity.String()]++
		}
	}

	projects := lo.Uniq(lo.Map(findings, func(f Finding, _ int) string {
		return lo.FromPtr(f.Project)
	}))

	return Summary{
		VulnerablePackages: len(findings),
		Vulnerabilities:    lo.SumBy(findings, func(f Finding) int { return f.Count }),
		Projects:           len(projects),
		BySeverity:         bySeverity,
	}
}

// Count returns the number of advisory records with the given severity.
func (s Summary) Count(severity Severity) int {
	return s.BySeverity[severity.String()]
}
