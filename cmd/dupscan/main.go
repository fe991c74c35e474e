package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/IvanShishkin/dupscan/internal/config"
	"github.com/IvanShishkin/dupscan/internal/core"
	"github.com/IvanShishkin/dupscan/internal/report"
)

var (
	logger  *zap.Logger
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dupscan",
		Short: "Dupscan - Duplicate File Finder",
		Long: `Scans a directory tree and reports groups of files that are likely
duplicates: identical size and content hash, identical full name, or
identical base name with differing extensions. Files are never modified.`,
		Version: core.Version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(scanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scanCmd creates the scan command
func scanCmd() *cobra.Command {
	var (
		followSymlinks  bool
		minSize         string
		extensions      []string
		workers         int
		hashAlgorithm   string
		caseInsensitive bool
		ignoreEmpty     bool
		reportFormat    string
		outputFile      string
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory tree for likely duplicate files",
		Long: `Recursively scan a directory and report duplicate groups for human
review. Unreadable entries produce warnings on stderr; the scan itself
continues.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				cfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = cfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if cmd.Flags().Changed("follow-symlinks") {
				cfg.FollowSymlinks = followSymlinks
			}
			if minSize != "" {
				cfg.MinSize = minSize
			}
			if len(extensions) > 0 {
				cfg.Extensions = extensions
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if hashAlgorithm != "" {
				cfg.HashAlgorithm = hashAlgorithm
			}
			if cmd.Flags().Changed("case-insensitive") {
				cfg.CaseInsensitive = caseInsensitive
			}
			if cmd.Flags().Changed("ignore-empty") {
				cfg.IgnoreEmpty = ignoreEmpty
			}
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Cancel the scan on interrupt; a cancelled scan produces no report
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			scanner := core.NewScanner(cfg, logger)
			if verbose {
				scanner.SetProgressCallback(func(phase string, current, total int) {
					fmt.Fprintf(os.Stderr, "\r%s: %d/%d", phase, current, total)
					if current == total {
						fmt.Fprintln(os.Stderr)
					}
				})
			}

			result, err := scanner.Scan(ctx, path)
			if err != nil {
				logger.Error("Scan failed", zap.Error(err))
				return err
			}

			// Warnings go to stderr, separate from the report
			if w := report.RenderWarnings(result.Warnings); w != "" {
				fmt.Fprint(os.Stderr, w)
			}

			generator := report.NewGenerator(cfg, logger)
			return generator.Generate(result)
		},
	}

	cmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", false, "Follow symbolic links while walking")
	cmd.Flags().StringVar(&minSize, "min-size", "", "Minimum file size to consider (e.g. 4K, 1M)")
	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "File extensions to include (default all)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of hash workers (default CPU count)")
	cmd.Flags().StringVar(&hashAlgorithm, "hash", "", "Hash algorithm: md5, sha1, sha256, xxh64 (default md5)")
	cmd.Flags().BoolVar(&caseInsensitive, "case-insensitive", false, "Fold case when comparing file names")
	cmd.Flags().BoolVar(&ignoreEmpty, "ignore-empty", false, "Never group zero-byte files by content")
	cmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Report format: text, json, yaml, markdown (default text)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}
