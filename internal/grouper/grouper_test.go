package grouper

import (
	"testing"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

func entry(path, name string, size int64, digest string) *models.FileEntry {
	base, ext := name, ""
	for i := len(name) - 1; i > 0; i-- {
		if name[i] == '.' {
			base, ext = name[:i], name[i:]
			break
		}
	}
	return &models.FileEntry{Path: path, Name: name, Base: base, Ext: ext, Size: size, Digest: digest}
}

func TestBucketBySize(t *testing.T) {
	entries := []*models.FileEntry{
		entry("/a/x.txt", "x.txt", 10, ""),
		entry("/b/y.txt", "y.txt", 10, ""),
		entry("/c/z.txt", "z.txt", 20, ""),
	}

	buckets := BucketBySize(entries)
	if len(buckets) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(buckets))
	}
	if len(buckets[10]) != 2 || len(buckets[20]) != 1 {
		t.Errorf("Unexpected bucket sizes: %d and %d", len(buckets[10]), len(buckets[20]))
	}
}

func TestPruneSingletons(t *testing.T) {
	buckets := map[int64][]*models.FileEntry{
		10: {entry("/a", "a", 10, ""), entry("/b", "b", 10, "")},
		20: {entry("/c", "c", 20, "")},
	}

	pruned := PruneSingletons(buckets)
	if len(pruned) != 1 {
		t.Fatalf("Expected 1 bucket after pruning, got %d", len(pruned))
	}
	if _, ok := pruned[20]; ok {
		t.Error("Singleton bucket should have been pruned")
	}
}

func TestGroupByDigest(t *testing.T) {
	buckets := map[int64][]*models.FileEntry{
		10: {
			entry("/a/one.txt", "one.txt", 10, "aaaa"),
			entry("/b/two.txt", "two.txt", 10, "aaaa"),
			entry("/c/three.txt", "three.txt", 10, "bbbb"),
		},
		99: {
			entry("/big/one.bin", "one.bin", 99, "cccc"),
			entry("/big/two.bin", "two.bin", 99, "cccc"),
		},
	}

	groups := GroupByDigest(buckets)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}

	// Descending total size: the 99-byte pair sorts first
	if groups[0].Key != "cccc" {
		t.Errorf("Expected largest group first, got key %q", groups[0].Key)
	}
	if groups[1].Key != "aaaa" || len(groups[1].Files) != 2 {
		t.Errorf("Expected two-member group aaaa, got %q with %d members", groups[1].Key, len(groups[1].Files))
	}

	for _, g := range groups {
		if g.Kind != models.KindSizeHash {
			t.Errorf("Expected kind %q, got %q", models.KindSizeHash, g.Kind)
		}
		if len(g.Files) < 2 {
			t.Errorf("Group %q has fewer than two members", g.Key)
		}
	}
}

func TestGroupByDigest_DifferentContentNeverGrouped(t *testing.T) {
	buckets := map[int64][]*models.FileEntry{
		10: {
			entry("/a/one.txt", "one.txt", 10, "aaaa"),
			entry("/b/two.txt", "two.txt", 10, "bbbb"),
		},
	}

	if groups := GroupByDigest(buckets); len(groups) != 0 {
		t.Errorf("Files with equal size but different digests must not group, got %d groups", len(groups))
	}
}

func TestGroupByDigest_SkipsFailedHashes(t *testing.T) {
	buckets := map[int64][]*models.FileEntry{
		10: {
			entry("/a/one.txt", "one.txt", 10, "aaaa"),
			entry("/b/two.txt", "two.txt", 10, "aaaa"),
			entry("/c/broken.txt", "broken.txt", 10, ""), // hashing failed
		},
	}

	groups := GroupByDigest(buckets)
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Files) != 2 {
		t.Errorf("Unhashed entry must be excluded, got %d members", len(groups[0].Files))
	}
}

func TestGroupByName(t *testing.T) {
	entries := []*models.FileEntry{
		entry("/a/x.txt", "x.txt", 10, ""),
		entry("/b/x.txt", "x.txt", 99, ""),
		entry("/c/unique.txt", "unique.txt", 10, ""),
	}

	groups := GroupByName(entries, false)
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if groups[0].Key != "x.txt" || len(groups[0].Files) != 2 {
		t.Errorf("Expected x.txt group with 2 members, got %q with %d", groups[0].Key, len(groups[0].Files))
	}
	if groups[0].Kind != models.KindName {
		t.Errorf("Expected kind %q, got %q", models.KindName, groups[0].Kind)
	}

	// Members ordered by path
	if groups[0].Files[0].Path != "/a/x.txt" {
		t.Errorf("Expected members sorted by path, first is %q", groups[0].Files[0].Path)
	}
}

func TestGroupByName_CaseSensitivity(t *testing.T) {
	entries := []*models.FileEntry{
		entry("/a/Readme.md", "Readme.md", 10, ""),
		entry("/b/readme.md", "readme.md", 12, ""),
	}

	tests := []struct {
		name            string
		caseInsensitive bool
		wantGroups      int
	}{
		{"Case sensitive", false, 0},
		{"Case insensitive", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupByName(entries, tt.caseInsensitive)
			if len(groups) != tt.wantGroups {
				t.Errorf("Expected %d groups, got %d", tt.wantGroups, len(groups))
			}
		})
	}
}

func TestGroupByExtensionCollision(t *testing.T) {
	entries := []*models.FileEntry{
		entry("/a/photo.jpg", "photo.jpg", 10, ""),
		entry("/a/photo.png", "photo.png", 20, ""),
		entry("/b/doc.txt", "doc.txt", 10, ""),
		entry("/c/doc.txt", "doc.txt", 10, ""), // same extension twice, no collision
	}

	groups := GroupByExtensionCollision(entries, false)
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if groups[0].Key != "photo" || len(groups[0].Files) != 2 {
		t.Errorf("Expected photo group with 2 members, got %q with %d", groups[0].Key, len(groups[0].Files))
	}
	if groups[0].Kind != models.KindExtensionCollision {
		t.Errorf("Expected kind %q, got %q", models.KindExtensionCollision, groups[0].Kind)
	}
}

func TestGroupByExtensionCollision_MissingExtensionIsAVariant(t *testing.T) {
	entries := []*models.FileEntry{
		entry("/a/README", "README", 10, ""),
		entry("/b/README.md", "README.md", 20, ""),
	}

	groups := GroupByExtensionCollision(entries, false)
	if len(groups) != 1 {
		t.Fatalf("Expected extension-less name to collide with .md, got %d groups", len(groups))
	}
}

func TestGroupByExtensionCollision_HiddenFiles(t *testing.T) {
	// Hidden names have no extension, so two hidden files never collide
	entries := []*models.FileEntry{
		{Path: "/a/.bashrc", Name: ".bashrc", Base: ".bashrc", Ext: "", Size: 1},
		{Path: "/b/.bashrc", Name: ".bashrc", Base: ".bashrc", Ext: "", Size: 2},
	}

	if groups := GroupByExtensionCollision(entries, false); len(groups) != 0 {
		t.Errorf("Expected no collision for hidden files, got %d groups", len(groups))
	}
}

func TestSortKeyedGroups_Deterministic(t *testing.T) {
	entries := []*models.FileEntry{
		entry("/z/b.txt", "b.txt", 1, ""),
		entry("/a/b.txt", "b.txt", 1, ""),
		entry("/z/a.txt", "a.txt", 1, ""),
		entry("/a/a.txt", "a.txt", 1, ""),
	}

	groups := GroupByName(entries, false)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "a.txt" || groups[1].Key != "b.txt" {
		t.Errorf("Groups not sorted by key: %q, %q", groups[0].Key, groups[1].Key)
	}
	for _, g := range groups {
		if g.Files[0].Path > g.Files[1].Path {
			t.Errorf("Members of %q not sorted by path", g.Key)
		}
	}
}
