package core

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/IvanShishkin/dupscan/internal/config"
	"github.com/IvanShishkin/dupscan/internal/filesystem"
	"github.com/IvanShishkin/dupscan/internal/grouper"
	"github.com/IvanShishkin/dupscan/internal/hasher"
	"github.com/IvanShishkin/dupscan/pkg/models"
)

// Version is stamped into every ScanResult
const Version = "0.1.0"

// ProgressCallback is called to report scan progress
type ProgressCallback func(phase string, current, total int)

// Scanner is the duplicate-detection engine. It sequences the walk, the
// size-bucket filter, the hashing pipeline and the three groupers into one
// ScanResult with deterministic ordering.
type Scanner struct {
	config           *config.Config
	logger           *zap.Logger
	progressCallback ProgressCallback
}

// NewScanner creates a new scanner instance
func NewScanner(cfg *config.Config, logger *zap.Logger) *Scanner {
	return &Scanner{
		config: cfg,
		logger: logger,
	}
}

// SetProgressCallback sets the progress callback function
func (s *Scanner) SetProgressCallback(cb ProgressCallback) {
	s.progressCallback = cb
}

func (s *Scanner) reportProgress(phase string, current, total int) {
	if s.progressCallback != nil {
		s.progressCallback(phase, current, total)
	}
}

// Scan walks the tree rooted at path and returns the classified duplicate
// groups. A cancelled context discards all partial work and returns the
// context error; a scan that merely hit unreadable entries still returns a
// result, with the problems accumulated as warnings.
func (s *Scanner) Scan(ctx context.Context, path string) (*models.ScanResult, error) {
	if err := filesystem.ValidateRoot(path); err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}

	s.logger.Info("Starting scan",
		zap.String("path", absPath),
		zap.String("algorithm", s.config.HashAlgorithm),
		zap.Int("workers", s.config.WorkerCount()))

	result := &models.ScanResult{
		StartTime: time.Now(),
		ScanPath:  absPath,
		Version:   Version,
		Stats:     &models.ScanStatistics{WorkersUsed: s.config.WorkerCount()},
	}

	entries, err := s.collectEntries(ctx, absPath, result)
	if err != nil {
		return nil, err
	}
	s.reportProgress("walking", len(entries), len(entries))

	// Name-based grouping needs no content access and runs concurrently
	// with the hashing pipeline over the immutable entry snapshot.
	var (
		nameGroups []*models.DuplicateGroup
		extGroups  []*models.DuplicateGroup
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		nameGroups = grouper.GroupByName(entries, s.config.CaseInsensitive)
	}()
	go func() {
		defer wg.Done()
		extGroups = grouper.GroupByExtensionCollision(entries, s.config.CaseInsensitive)
	}()

	candidates := grouper.PruneSingletons(grouper.BucketBySize(entries))
	if s.config.IgnoreEmpty {
		delete(candidates, 0)
	}

	sizeHashGroups, err := s.hashAndGroup(ctx, candidates, result)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	result.SizeHashGroups = sizeHashGroups
	result.NameGroups = nameGroups
	result.ExtensionGroups = extGroups

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	if secs := result.Duration.Seconds(); secs > 0 {
		result.Stats.FilesPerSec = float64(result.Stats.TotalFiles) / secs
	}

	s.logger.Info("Scan completed",
		zap.Duration("duration", result.Duration),
		zap.Int("total_files", result.Stats.TotalFiles),
		zap.Int("files_hashed", result.Stats.FilesHashed),
		zap.Int("groups", result.GroupCount()),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}

// collectEntries walks the tree and returns every regular file passing the
// size and extension filters. Walk warnings land on the result in visit
// order.
func (s *Scanner) collectEntries(ctx context.Context, root string, result *models.ScanResult) ([]*models.FileEntry, error) {
	walker := filesystem.NewWalker(s.logger, s.config.FollowSymlinks)
	walker.SetWarningFunc(func(path, reason string) {
		result.AddWarning(path, reason)
		result.Stats.AccessErrors++
	})

	minSize := s.config.MinSizeBytes()
	extFilter := s.config.NormalizedExtensions()

	var entries []*models.FileEntry
	err := walker.Walk(ctx, root, func(entry *models.FileEntry) error {
		result.Stats.TotalFiles++
		if minSize > 0 && entry.Size < minSize {
			result.Stats.FilteredFiles++
			return nil
		}
		if len(extFilter) > 0 && !containsExt(extFilter, entry.Ext) {
			result.Stats.FilteredFiles++
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// hashAndGroup dispatches the size-bucket candidates to the hash pool,
// merges results back single-writer, and groups by digest. Files that
// became unreadable mid-read are excluded from content grouping and
// recorded as warnings sorted by path, keeping the report reproducible
// regardless of worker completion order.
func (s *Scanner) hashAndGroup(ctx context.Context, candidates map[int64][]*models.FileEntry, result *models.ScanResult) ([]*models.DuplicateGroup, error) {
	total := 0
	for _, files := range candidates {
		total += len(files)
	}
	if total == 0 {
		return nil, ctx.Err()
	}

	pool := hasher.NewPool(s.config.WorkerCount(), s.config.Algorithm(), s.logger)
	if err := pool.Start(ctx); err != nil {
		return nil, err
	}

	go func() {
		for _, files := range candidates {
			for _, f := range files {
				pool.Submit(f)
			}
		}
		pool.CloseSubmit()
	}()

	var hashWarnings []models.Warning
	processed := 0
	for res := range pool.Results() {
		processed++
		if res.Err != nil {
			if ctx.Err() == nil {
				hashWarnings = append(hashWarnings, models.Warning{
					Path:   res.Entry.Path,
					Reason: res.Err.Error(),
				})
				result.Stats.HashErrors++
			}
			continue
		}
		res.Entry.Digest = res.Digest
		result.Stats.FilesHashed++
		result.Stats.BytesHashed += res.Entry.Size
		s.reportProgress("hashing", processed, total)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(hashWarnings, func(i, j int) bool {
		return hashWarnings[i].Path < hashWarnings[j].Path
	})
	result.Warnings = append(result.Warnings, hashWarnings...)

	return grouper.GroupByDigest(candidates), nil
}

func containsExt(filter []string, ext string) bool {
	for _, e := range filter {
		if e == ext {
			return true
		}
	}
	return false
}
