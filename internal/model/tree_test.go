package model

import (
	"encoding/json"
	"testing"
)

// decodeTree decodes JSON the same way the parser package does.
func decodeTree(t *testing.T, s string) any {
	t.Helper()

	var tree any
	if err := json.Unmarshal([]byte(s), &tree); err != nil {
		t.Fatalf("invalid test JSON: %v", err)
	}
	return tree
}

func strValue(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

// TestFromTree tests conversion of a decoded tree into a Document.
func TestFromTree(t *testing.T) {
	t.Parallel()

	t.Run("converts full document", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `{
			"version": 1,
			"parameters": "--vulnerable",
			"projects": [{
				"name": "P",
				"path": "/src/P.csproj",
				"frameworks": [{
					"framework": "net8.0",
					"topLevelPackages": [{
						"name": "Foo",
						"requestedVersion": "1.2.0",
						"resolvedVersion": "1.2.3",
						"vulnerabilities": [
							{"severity": "High", "advisoryurl": "https://github.com/advisories/GHSA-1"},
							{"severity": "Low"}
						]
					}],
					"transitivePackages": [{"name": "Bar", "resolvedVersion": "2.0.0"}]
				}]
			}]
		}`))

		if doc.Version == nil || *doc.Version != 1 {
			t.Errorf("expected version 1, got %v", doc.Version)
		}
		if strValue(doc.Parameters) != "--vulnerable" {
			t.Errorf("unexpected parameters %q", strValue(doc.Parameters))
		}
		if len(doc.Projects) != 1 {
			t.Fatalf("expected 1 project, got %d", len(doc.Projects))
		}

		project := doc.Projects[0]
		if strValue(project.Name) != "P" || strValue(project.Path) != "/src/P.csproj" {
			t.Errorf("unexpected project %q %q", strValue(project.Name), strValue(project.Path))
		}
		if len(project.Frameworks) != 1 {
			t.Fatalf("expected 1 framework, got %d", len(project.Frameworks))
		}

		fw := project.Frameworks[0]
		if strValue(fw.Framework) != "net8.0" {
			t.Errorf("expected net8.0, got %q", strValue(fw.Framework))
		}
		if len(fw.TopLevelPackages) != 1 || len(fw.TransitivePackages) != 1 {
			t.Fatalf("unexpected package counts %d/%d", len(fw.TopLevelPackages), len(fw.TransitivePackages))
		}

		pkg := fw.TopLevelPackages[0]
		if strValue(pkg.Name) != "Foo" || strValue(pkg.ResolvedVersion) != "1.2.3" || strValue(pkg.RequestedVersion) != "1.2.0" {
			t.Errorf("unexpected package %+v", pkg)
		}
		if len(pkg.Vulnerabilities) != 2 {
			t.Fatalf("expected 2 vulnerabilities, got %d", len(pkg.Vulnerabilities))
		}
		if pkg.Vulnerabilities[0].Severity != SeverityHigh {
			t.Errorf("expected High, got %v", pkg.Vulnerabilities[0].Severity)
		}
		if strValue(pkg.Vulnerabilities[0].AdvisoryURL) != "https://github.com/advisories/GHSA-1" {
			t.Errorf("unexpected advisory url %q", strValue(pkg.Vulnerabilities[0].AdvisoryURL))
		}
		if pkg.Vulnerabilities[1].AdvisoryURL != nil {
			t.Error("expected absent advisory url")
		}

		if len(fw.TransitivePackages[0].Vulnerabilities) != 0 {
			t.Error("expected transitive package without vulnerabilities")
		}
	})

	t.Run("nil tree yields empty document", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(nil)
		if doc == nil {
			t.Fatal("expected non-nil document")
		}
		if len(doc.Projects) != 0 {
			t.Errorf("expected no projects, got %d", len(doc.Projects))
		}
	})

	t.Run("non-mapping root yields empty document", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `[{"projects": []}]`))
		if len(doc.Projects) != 0 {
			t.Errorf("expected no projects, got %d", len(doc.Projects))
		}
	})

	t.Run("missing fields are absent", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `{"projects": [{"frameworks": [{"topLevelPackages": [{"vulnerabilities": [{}]}]}]}]}`))
		pkg := doc.Projects[0].Frameworks[0].TopLevelPackages[0]

		if doc.Projects[0].Name != nil {
			t.Error("expected absent project name")
		}
		if doc.Projects[0].Frameworks[0].Framework != nil {
			t.Error("expected absent framework")
		}
		if pkg.Name != nil || pkg.ResolvedVersion != nil {
			t.Error("expected absent package name and version")
		}
		if len(pkg.Vulnerabilities) != 1 {
			t.Errorf("expected 1 vulnerability, got %d", len(pkg.Vulnerabilities))
		}
		if pkg.Vulnerabilities[0].Severity != SeverityUnknown {
			t.Errorf("expected Unknown severity, got %v", pkg.Vulnerabilities[0].Severity)
		}
	})

	t.Run("wrong sequence types become empty", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `{"projects": [{"name": "P", "frameworks": {"framework": "net8.0"}}], "problems": "none"}`))
		if len(doc.Projects[0].Frameworks) != 0 {
			t.Errorf("expected no frameworks, got %d", len(doc.Projects[0].Frameworks))
		}
		if len(doc.Problems) != 0 {
			t.Errorf("expected no problems, got %d", len(doc.Problems))
		}
	})

	t.Run("scalars are coerced to text", func(t *testing.T) {
		t.Parallel()

		var tree any
		dec := json.NewDecoder(stringsReader(`{"projects": [{"name": 42, "frameworks": [{"framework": true, "topLevelPackages": [{"name": "X", "resolvedVersion": 1.5}]}]}]}`))
		dec.UseNumber()
		if err := dec.Decode(&tree); err != nil {
			t.Fatal(err)
		}

		doc := FromTree(tree)
		project := doc.Projects[0]
		if strValue(project.Name) != "42" {
			t.Errorf("expected name 42, got %q", strValue(project.Name))
		}
		if strValue(project.Frameworks[0].Framework) != "true" {
			t.Errorf("expected framework true, got %q", strValue(project.Frameworks[0].Framework))
		}
		if v := project.Frameworks[0].TopLevelPackages[0].ResolvedVersion; strValue(v) != "1.5" {
			t.Errorf("expected version 1.5, got %q", strValue(v))
		}
	})

	t.Run("non-scalar text field is absent", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `{"projects": [{"name": {"first": "P"}}]}`))
		if doc.Projects[0].Name != nil {
			t.Error("expected absent project name")
		}
	})

	t.Run("records of arbitrary shape are kept", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `{"projects": [{"frameworks": [{"topLevelPackages": [{"name": "X", "vulnerabilities": ["GHSA-1", 7, null, []]}]}]}]}`))
		vulns := doc.Projects[0].Frameworks[0].TopLevelPackages[0].Vulnerabilities
		if len(vulns) != 4 {
			t.Fatalf("expected 4 records, got %d", len(vulns))
		}
		if vulns[0].Raw != "GHSA-1" {
			t.Errorf("expected raw record to be preserved, got %v", vulns[0].Raw)
		}
	})

	t.Run("problems are converted", func(t *testing.T) {
		t.Parallel()

		doc := FromTree(decodeTree(t, `{"problems": [{"project": "/src/A.csproj", "level": "error", "text": "No assets file was found"}]}`))
		if len(doc.Problems) != 1 {
			t.Fatalf("expected 1 problem, got %d", len(doc.Problems))
		}
		p := doc.Problems[0]
		if strValue(p.Project) != "/src/A.csproj" || strValue(p.Level) != "error" || strValue(p.Text) != "No assets file was found" {
			t.Errorf("unexpected problem %+v", p)
		}
	})
}

// TestAsMap tests mapping conversion for both decoder map shapes.
func TestAsMap(t *testing.T) {
	t.Parallel()

	m, ok := asMap(map[any]any{"name": "P", 1: "one"})
	if !ok {
		t.Fatal("expected map[any]any to convert")
	}
	if m["name"] != "P" || m["1"] != "one" {
		t.Errorf("unexpected conversion %v", m)
	}

	if _, ok := asMap("text"); ok {
		t.Error("expected string not to convert")
	}
}

// TestAsText tests scalar coercion.
func TestAsText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "abc", "abc"},
		{"empty string", "", ""},
		{"json number", json.Number("12"), "12"},
		{"int", 3, "3"},
		{"int64", int64(-4), "-4"},
		{"uint64", uint64(5), "5"},
		{"float", 2.25, "2.25"},
		{"bool", false, "false"},
		{"nil", nil, "<nil>"},
		{"slice", []any{"a"}, "<nil>"},
	}

	for _, tc := range testCases {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := strValue(asText(tc.input)); got != tc.expected {
				t.Errorf("asText(%v) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
