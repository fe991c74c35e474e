package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"

	"github.com/IvanShishkin/dupscan/internal/filesystem"
	"github.com/IvanShishkin/dupscan/internal/hasher"
)

// Config represents the scanner configuration
type Config struct {
	// Scan settings
	FollowSymlinks  bool     `mapstructure:"follow_symlinks"`  // descend into symlinked directories
	MinSize         string   `mapstructure:"min_size"`         // minimum file size to consider, e.g. "4K"
	Extensions      []string `mapstructure:"extensions"`       // file extensions to include, empty means all
	Workers         int      `mapstructure:"workers"`          // number of hash worker goroutines
	HashAlgorithm   string   `mapstructure:"hash_algorithm"`   // md5, sha1, sha256, xxh64
	CaseInsensitive bool     `mapstructure:"case_insensitive"` // fold case for name-based grouping
	IgnoreEmpty     bool     `mapstructure:"ignore_empty"`     // never group zero-byte files by content

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // text, json, yaml, markdown
	OutputFile   string `mapstructure:"output_file"`   // output file path, empty means stdout
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("follow_symlinks", false)
	v.SetDefault("min_size", "")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("hash_algorithm", string(hasher.DefaultAlgorithm))
	v.SetDefault("case_insensitive", false)
	v.SetDefault("ignore_empty", false)
	v.SetDefault("report_format", "text")

	// Read environment variables
	v.SetEnvPrefix("DUPSCAN")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all selector fields carry supported values
func (c *Config) Validate() error {
	if !hasher.Valid(hasher.Algorithm(c.HashAlgorithm)) {
		return fmt.Errorf("unknown hash algorithm %q (supported: %v)", c.HashAlgorithm, hasher.Algorithms())
	}
	switch c.ReportFormat {
	case "text", "json", "yaml", "markdown":
	default:
		return fmt.Errorf("unknown report format %q (supported: text, json, yaml, markdown)", c.ReportFormat)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := filesystem.ParseSize(c.MinSize); err != nil {
		return fmt.Errorf("invalid min_size: %w", err)
	}
	return nil
}

// Algorithm returns the configured digest algorithm
func (c *Config) Algorithm() hasher.Algorithm {
	return hasher.Algorithm(c.HashAlgorithm)
}

// MinSizeBytes returns the minimum-size filter in bytes, 0 when unset.
// Validate has already rejected unparseable values.
func (c *Config) MinSizeBytes() int64 {
	size, err := filesystem.ParseSize(c.MinSize)
	if err != nil {
		return 0
	}
	return size
}

// NormalizedExtensions returns the extension filter in leading-dot form,
// nil when the filter is unset
func (c *Config) NormalizedExtensions() []string {
	return filesystem.NormalizeExtensions(c.Extensions)
}

// WorkerCount returns the effective hash worker count
func (c *Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
