package audit

import (
	"slices"

	"github.com/samber/lo"

	"github.com/nao1215/dotnetvuln/internal/model"
)

// Extract returns one Finding per vulnerable package in doc, in traversal order.
// A nil Document yields no findings.
func Extract(doc *model.Document) []model.Finding {
	if doc == nil {
		return nil
	}

	var findings []model.Finding
	for _, project := range doc.Projects {
		for _, framework := range project.Frameworks {
			for _, group := range model.PackageGroups {
				findings = append(findings, extractGroup(project, framework, group)...)
			}
		}
	}
	return findings
}

// extractGroup collects the vulnerable packages of a single package group.
func extractGroup(project model.Project, framework model.Framework, group model.PackageGroup) []model.Finding {
	return lo.FilterMap(framework.Packages(group), func(pkg model.Package, _ int) (model.Finding, bool) {
		if len(pkg.Vulnerabilities) == 0 {
			return model.Finding{}, false
		}
		return model.Finding{
			Project:    project.Name,
			Framework:  framework.Framework,
			Package:    pkg.Name,
			Version:    pkg.ResolvedVersion,
			Group:      group,
			Count:      len(pkg.Vulnerabilities),
			Advisories: slices.Clone(pkg.Vulnerabilities),
		}, true
	})
}
