package grouper

import (
	"strings"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// GroupByName clusters entries by exact full name (name plus extension),
// regardless of directory, size or content. With caseInsensitive the name
// is folded to lower case before comparison and the folded form becomes
// the group key.
func GroupByName(entries []*models.FileEntry, caseInsensitive bool) []*models.DuplicateGroup {
	byName := make(map[string][]*models.FileEntry)
	for _, entry := range entries {
		key := entry.Name
		if caseInsensitive {
			key = strings.ToLower(key)
		}
		byName[key] = append(byName[key], entry)
	}

	var groups []*models.DuplicateGroup
	for name, members := range PruneSingletons(byName) {
		groups = append(groups, &models.DuplicateGroup{
			Kind:  models.KindName,
			Key:   name,
			Files: members,
		})
	}

	SortKeyedGroups(groups)
	return groups
}
