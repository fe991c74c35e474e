package models

import "time"

// ScanResult contains the complete results of one scan invocation
type ScanResult struct {
	// Summary
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	ScanPath  string        `json:"scan_path" yaml:"scan_path"`

	// Duplicate groups by criterion
	SizeHashGroups  []*DuplicateGroup `json:"size_hash_groups" yaml:"size_hash_groups"`
	NameGroups      []*DuplicateGroup `json:"name_groups" yaml:"name_groups"`
	ExtensionGroups []*DuplicateGroup `json:"extension_groups" yaml:"extension_groups"`

	// Non-fatal problems accumulated during the scan
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Statistics
	Stats *ScanStatistics `json:"statistics" yaml:"statistics"`

	Version string `json:"version" yaml:"version"`
}

// ScanStatistics contains detailed scan statistics
type ScanStatistics struct {
	TotalFiles    int     `json:"total_files" yaml:"total_files"`
	FilteredFiles int     `json:"filtered_files" yaml:"filtered_files"`
	FilesHashed   int     `json:"files_hashed" yaml:"files_hashed"`
	BytesHashed   int64   `json:"bytes_hashed" yaml:"bytes_hashed"`
	HashErrors    int     `json:"hash_errors" yaml:"hash_errors"`
	AccessErrors  int     `json:"access_errors" yaml:"access_errors"`
	WorkersUsed   int     `json:"workers_used" yaml:"workers_used"`
	FilesPerSec   float64 `json:"files_per_second" yaml:"files_per_second"`
}

// GroupCount returns the total number of duplicate groups across all criteria
func (r *ScanResult) GroupCount() int {
	return len(r.SizeHashGroups) + len(r.NameGroups) + len(r.ExtensionGroups)
}

// AddWarning appends a non-fatal problem to the result
func (r *ScanResult) AddWarning(path, reason string) {
	r.Warnings = append(r.Warnings, Warning{Path: path, Reason: reason})
}

// GroupsByKind returns the collection matching the given criterion
func (r *ScanResult) GroupsByKind(kind GroupKind) []*DuplicateGroup {
	switch kind {
	case KindSizeHash:
		return r.SizeHashGroups
	case KindName:
		return r.NameGroups
	case KindExtensionCollision:
		return r.ExtensionGroups
	}
	return nil
}
