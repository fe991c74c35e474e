package grouper

import (
	"sort"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// SortSizeHashGroups orders groups by descending total size, breaking ties
// by the first member's path, and sorts members within each group by path.
// Report output is byte-identical across runs on an unchanged tree.
func SortSizeHashGroups(groups []*models.DuplicateGroup) {
	sortMembers(groups)
	sort.Slice(groups, func(i, j int) bool {
		si, sj := groups[i].TotalSize(), groups[j].TotalSize()
		if si != sj {
			return si > sj
		}
		return groups[i].Files[0].Path < groups[j].Files[0].Path
	})
}

// SortKeyedGroups orders groups lexicographically by key and sorts members
// within each group by path
func SortKeyedGroups(groups []*models.DuplicateGroup) {
	sortMembers(groups)
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
}

func sortMembers(groups []*models.DuplicateGroup) {
	for _, g := range groups {
		sort.Slice(g.Files, func(i, j int) bool {
			return g.Files[i].Path < g.Files[j].Path
		})
	}
}
