package models

// GroupKind classifies why the members of a group are considered duplicates
type GroupKind string

const (
	KindSizeHash           GroupKind = "same size and hash"
	KindName               GroupKind = "same name"
	KindExtensionCollision GroupKind = "same base different extension"
)

// DuplicateGroup is an ordered set of at least two files that are pairwise
// equivalent under the group's criterion
type DuplicateGroup struct {
	Kind  GroupKind    `json:"kind" yaml:"kind"`
	Key   string       `json:"key" yaml:"key"` // Digest, name or base name the members share
	Files []*FileEntry `json:"files" yaml:"files"`
}

// TotalSize returns the combined byte size of all members
func (g *DuplicateGroup) TotalSize() int64 {
	var total int64
	for _, f := range g.Files {
		total += f.Size
	}
	return total
}
