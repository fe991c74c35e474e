// Package grouper turns a flat file listing into classified duplicate
// groups. Each grouper is a pure function over immutable FileEntry slices;
// ordering of the returned groups is deterministic.
package grouper

import (
	"github.com/IvanShishkin/dupscan/pkg/models"
)

// BucketBySize partitions entries by exact byte size
func BucketBySize(entries []*models.FileEntry) map[int64][]*models.FileEntry {
	buckets := make(map[int64][]*models.FileEntry)
	for _, entry := range entries {
		buckets[entry.Size] = append(buckets[entry.Size], entry)
	}
	return buckets
}

// PruneSingletons removes buckets with fewer than two members, since no
// duplicate is possible there
func PruneSingletons[K comparable](buckets map[K][]*models.FileEntry) map[K][]*models.FileEntry {
	pruned := make(map[K][]*models.FileEntry, len(buckets))
	for key, files := range buckets {
		if len(files) > 1 {
			pruned[key] = files
		}
	}
	return pruned
}
