package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// FromTree converts a loosely typed decoded document (as produced by
// encoding/json or yaml.v3 decoding into an `any`) into a Document.
//
// Conversion never fails. Missing keys become absent values, sequences of the
// wrong type become empty, and scalar numbers or booleans found where text is
// expected are rendered as text. A nil or non-mapping tree yields an empty
// Document.
func FromTree(tree any) *Document {
	root, _ := asMap(tree)

	doc := &Document{
		Parameters: asText(root["parameters"]),
		Problems:   lo.Map(asSlice(root["problems"]), problemFromTree),
		Projects:   lo.Map(asSlice(root["projects"]), projectFromTree),
	}
	if v := asText(root["version"]); v != nil {
		if n, err := strconv.Atoi(*v); err == nil {
			doc.Version = &n
		}
	}
	return doc
}

func problemFromTree(v any, _ int) Problem {
	m, _ := asMap(v)
	return Problem{
		Project: asText(m["project"]),
		Level:   asText(m["level"]),
		Text:    asText(m["text"]),
	}
}

func projectFromTree(v any, _ int) Project {
	m, _ := asMap(v)
	return Project{
		Name:       asText(m["name"]),
		Path:       asText(m["path"]),
		Frameworks: lo.Map(asSlice(m["frameworks"]), frameworkFromTree),
	}
}

func frameworkFromTree(v any, _ int) Framework {
	m, _ := asMap(v)
	return Framework{
		Framework:          asText(m["framework"]),
		TopLevelPackages:   lo.Map(asSlice(m["topLevelPackages"]), packageFromTree),
		TransitivePackages: lo.Map(asSlice(m["transitivePackages"]), packageFromTree),
	}
}

func packageFromTree(v any, _ int) Package {
	m, _ := asMap(v)
	return Package{
		Name:             asText(m["name"]),
		RequestedVersion: asText(m["requestedVersion"]),
		ResolvedVersion:  asText(m["resolvedVersion"]),
		Vulnerabilities:  lo.Map(asSlice(m["vulnerabilities"]), vulnerabilityFromTree),
	}
}

func vulnerabilityFromTree(v any, _ int) Vulnerability {
	vuln := Vulnerability{Raw: v}
	m, ok := asMap(v)
	if !ok {
		return vuln
	}
	if s := asText(m["severity"]); s != nil {
		vuln.Severity = ParseSeverity(*s)
	}
	vuln.AdvisoryURL = asText(m["advisoryurl"])
	if vuln.AdvisoryURL == nil {
		vuln.AdvisoryURL = asText(m["advisoryUrl"])
	}
	return vuln
}

// asMap returns v as a string-keyed mapping.
// yaml.v3 produces map[string]any for string keys but falls back to
// map[any]any when a key is not a string.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// asText returns the textual form of a scalar, or nil when v is absent or
// not a scalar.
func asText(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case uint64:
		s = strconv.FormatUint(t, 10)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return nil
	}
	return &s
}
