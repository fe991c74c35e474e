package grouper

import (
	"github.com/IvanShishkin/dupscan/pkg/models"
)

// GroupByDigest clusters entries by equal content digest within each size
// bucket and emits groups with at least two members. Entries without a
// digest (hashing failed) are skipped. Because grouping only ever compares
// digests within one size bucket, files of different sizes can never land
// in the same group.
func GroupByDigest(buckets map[int64][]*models.FileEntry) []*models.DuplicateGroup {
	var groups []*models.DuplicateGroup

	for _, files := range buckets {
		byDigest := make(map[string][]*models.FileEntry)
		for _, f := range files {
			if f.Digest == "" {
				continue
			}
			byDigest[f.Digest] = append(byDigest[f.Digest], f)
		}

		for digest, members := range PruneSingletons(byDigest) {
			groups = append(groups, &models.DuplicateGroup{
				Kind:  models.KindSizeHash,
				Key:   digest,
				Files: members,
			})
		}
	}

	SortSizeHashGroups(groups)
	return groups
}
