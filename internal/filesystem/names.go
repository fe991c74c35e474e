package filesystem

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitName splits a file name into base and extension at the last dot.
// The extension keeps its leading dot. A leading-dot name with no further
// dot is treated as all base ("hidden" files have no extension), so
// ".bashrc" yields (".bashrc", "") and "archive.tar.gz" yields
// ("archive.tar", ".gz").
func SplitName(name string) (base, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// NormalizeExtensions ensures every extension starts with a dot
func NormalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

// ParseSize parses a human-readable size string (e.g. "650K", "2M", "1G").
// The empty string means no size, 0.
func ParseSize(sizeStr string) (int64, error) {
	if len(sizeStr) == 0 {
		return 0, nil
	}

	// Get last character (unit)
	last := sizeStr[len(sizeStr)-1]
	var multiplier int64 = 1
	num := sizeStr

	switch last {
	case 'K', 'k':
		multiplier = 1024
		num = sizeStr[:len(sizeStr)-1]
	case 'M', 'm':
		multiplier = 1024 * 1024
		num = sizeStr[:len(sizeStr)-1]
	case 'G', 'g':
		multiplier = 1024 * 1024 * 1024
		num = sizeStr[:len(sizeStr)-1]
	}

	size, err := strconv.ParseInt(num, 10, 64)
	if err != nil || size < 0 {
		return 0, fmt.Errorf("invalid size %q", sizeStr)
	}

	return size * multiplier, nil
}

// FormatBytes renders a byte count as a human-readable string
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
