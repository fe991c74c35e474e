package models

// FileEntry represents one regular file discovered during the walk
type FileEntry struct {
	Path   string `json:"path" yaml:"path"`                         // Absolute file path
	Name   string `json:"name" yaml:"name"`                         // File name with extension
	Base   string `json:"base" yaml:"base"`                         // File name without extension
	Ext    string `json:"ext" yaml:"ext"`                           // Extension including the dot, "" if none
	Size   int64  `json:"size" yaml:"size"`                         // File size in bytes
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty"` // Content digest, set only for hashed candidates
}

// Warning records a non-fatal problem encountered during traversal or hashing
type Warning struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}
