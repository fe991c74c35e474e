package grouper

import (
	"strings"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// GroupByExtensionCollision clusters entries by base name and emits the
// cluster when at least two distinct extensions occur among its members.
// A missing extension counts as its own variant, so "README" next to
// "README.md" collides. Clusters where every member shares one extension
// are not emitted; same-name duplicates are the name grouper's signal.
func GroupByExtensionCollision(entries []*models.FileEntry, caseInsensitive bool) []*models.DuplicateGroup {
	byBase := make(map[string][]*models.FileEntry)
	for _, entry := range entries {
		key := entry.Base
		if caseInsensitive {
			key = strings.ToLower(key)
		}
		byBase[key] = append(byBase[key], entry)
	}

	var groups []*models.DuplicateGroup
	for base, members := range byBase {
		exts := make(map[string]bool, len(members))
		for _, m := range members {
			ext := m.Ext
			if caseInsensitive {
				ext = strings.ToLower(ext)
			}
			exts[ext] = true
		}
		if len(exts) < 2 {
			continue
		}
		groups = append(groups, &models.DuplicateGroup{
			Kind:  models.KindExtensionCollision,
			Key:   base,
			Files: members,
		})
	}

	SortKeyedGroups(groups)
	return groups
}
