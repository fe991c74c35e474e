package report

import (
	"strings"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// renderText renders the default console report: one labeled section per
// criterion, one blank-line-separated block per group, absolute paths one
// per line. The output carries no timestamps, so two scans of an unchanged
// tree render byte-identical reports.
func renderText(result *models.ScanResult) string {
	var sb strings.Builder

	for _, kind := range sectionOrder {
		sb.WriteString("Reason: " + string(kind) + "\n")

		groups := result.GroupsByKind(kind)
		if len(groups) == 0 {
			sb.WriteString("    No potential duplicates found.\n\n")
			continue
		}

		for _, group := range groups {
			for _, file := range group.Files {
				sb.WriteString("    - " + file.Path + "\n")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderWarnings renders the accumulated warnings, one per line. The CLI
// sends this to stderr, separate from the report itself.
func RenderWarnings(warnings []models.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString("warning: " + w.Path + ": " + w.Reason + "\n")
	}
	return sb.String()
}
