package model

import (
	"strings"
	"testing"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func ptr(s string) *string {
	return &s
}

// TestNewSummary tests aggregation over findings.
func TestNewSummary(t *testing.T) {
	t.Parallel()

	t.Run("empty findings", func(t *testing.T) {
		t.Parallel()

		s := NewSummary(nil)
		if s.VulnerablePackages != 0 || s.Vulnerabilities != 0 || s.Projects != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
		if len(s.BySeverity) != len(Severities) {
			t.Errorf("expected every severity to be present, got %v", s.BySeverity)
		}
	})

	t.Run("counts packages, records and projects", func(t *testing.T) {
		t.Parallel()

		findings := []Finding{
			{
				Project: ptr("A"),
				Count:   2,
				Advisories: []Vulnerability{
					{Severity: SeverityHigh},
					{Severity: SeverityCritical},
				},
			},
			{
				Project:    ptr("A"),
				Count:      1,
				Advisories: []Vulnerability{{Severity: SeverityHigh}},
			},
			{
				Project:    ptr("B"),
				Count:      1,
				Advisories: []Vulnerability{{Raw: "GHSA-x"}},
			},
		}

		s := NewSummary(findings)
		if s.VulnerablePackages != 3 {
			t.Errorf("expected 3 packages, got %d", s.VulnerablePackages)
		}
		if s.Vulnerabilities != 4 {
			t.Errorf("expected 4 vulnerabilities, got %d", s.Vulnerabilities)
		}
		if s.Projects != 2 {
			t.Errorf("expected 2 projects, got %d", s.Projects)
		}
		if s.Count(SeverityHigh) != 2 || s.Count(SeverityCritical) != 1 || s.Count(SeverityUnknown) != 1 {
			t.Errorf("unexpected severity counts %v", s.BySeverity)
		}
		if s.Count(SeverityLow) != 0 {
			t.Errorf("expected no low advisories, got %d", s.Count(SeverityLow))
		}
	})
}

// TestFindingHighestSeverity tests selection of the worst advisory level.
func TestFindingHighestSeverity(t *testing.T) {
	t.Parallel()

	f := Finding{Advisories: []Vulnerability{
		{Severity: SeverityLow},
		{Severity: SeverityHigh},
		{Severity: SeverityModerate},
	}}
	if got := f.HighestSeverity(); got != SeverityHigh {
		t.Errorf("expected High, got %v", got)
	}

	if got := (Finding{}).HighestSeverity(); got != SeverityUnknown {
		t.Errorf("expected Unknown for no advisories, got %v", got)
	}
}

func TestFrameworkPackages(t *testing.T) {
	t.Parallel()

	fw := Framework{
		TopLevelPackages:   []Package{{Name: ptr("Top")}},
		TransitivePackages: []Package{{Name: ptr("Trans")}},
	}
	if got := fw.Packages(GroupTopLevel); len(got) != 1 || *got[0].Name != "Top" {
		t.Errorf("unexpected top-level packages %v", got)
	}
	if got := fw.Packages(GroupTransitive); len(got) != 1 || *got[0].Name != "Trans" {
		t.Errorf("unexpected transitive packages %v", got)
	}
	if got := fw.Packages(PackageGroup("other")); got != nil {
		t.Errorf("expected nil for unknown group, got %v", got)
	}
	if len(PackageGroups) != 2 || PackageGroups[0] != GroupTopLevel {
		t.Errorf("expected top-level packages to be scanned first, got %v", PackageGroups)
	}
}
