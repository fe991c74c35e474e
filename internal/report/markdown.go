package report

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/dupscan/internal/filesystem"
	"github.com/IvanShishkin/dupscan/pkg/models"
)

var sectionTitles = map[models.GroupKind]string{
	models.KindSizeHash:           "Same Size and Hash",
	models.KindName:               "Same Name",
	models.KindExtensionCollision: "Same Base, Different Extension",
}

// renderMarkdown renders the result as a Markdown document
func renderMarkdown(result *models.ScanResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Duplicate Scan Report v%s\n\n", result.Version))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Scan Path | `%s` |\n", result.ScanPath))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(result.Duration)))
	sb.WriteString(fmt.Sprintf("| Total Files | %d |\n", result.Stats.TotalFiles))
	sb.WriteString(fmt.Sprintf("| Files Hashed | %d |\n", result.Stats.FilesHashed))
	sb.WriteString(fmt.Sprintf("| Bytes Hashed | %s |\n", filesystem.FormatBytes(result.Stats.BytesHashed)))
	sb.WriteString(fmt.Sprintf("| **Duplicate Groups** | **%d** |\n", result.GroupCount()))
	sb.WriteString(fmt.Sprintf("| Warnings | %d |\n", len(result.Warnings)))
	sb.WriteString("\n")

	for _, kind := range sectionOrder {
		sb.WriteString(fmt.Sprintf("## %s\n\n", sectionTitles[kind]))

		groups := result.GroupsByKind(kind)
		if len(groups) == 0 {
			sb.WriteString("No potential duplicates found.\n\n")
			continue
		}

		for _, group := range groups {
			if kind == models.KindSizeHash {
				sb.WriteString(fmt.Sprintf("### `%s` (%s)\n\n", group.Key, filesystem.FormatBytes(group.TotalSize())))
			} else {
				sb.WriteString(fmt.Sprintf("### `%s`\n\n", group.Key))
			}
			for _, file := range group.Files {
				sb.WriteString(fmt.Sprintf("- `%s`\n", file.Path))
			}
			sb.WriteString("\n")
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, w := range result.Warnings {
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", w.Path, w.Reason))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
