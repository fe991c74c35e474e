package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/IvanShishkin/dupscan/pkg/models"
)

// Precondition failures reported before any traversal starts
var (
	ErrRootNotFound     = errors.New("root path does not exist")
	ErrRootNotDirectory = errors.New("root path is not a directory")
)

// WarnFunc receives non-fatal traversal problems
type WarnFunc func(path, reason string)

// Walker enumerates regular files under a root path in deterministic order.
// Directories are descended depth-first with entries sorted by name, so two
// walks of an unchanged tree visit files in the same order.
type Walker struct {
	logger         *zap.Logger
	followSymlinks bool
	onWarning      WarnFunc

	// Resolved paths of directories already entered. Used only when
	// following symlinks: guards against cycles and against walking the
	// same physical directory again through an alias.
	visited map[string]bool
}

// NewWalker creates a new filesystem walker
func NewWalker(logger *zap.Logger, followSymlinks bool) *Walker {
	return &Walker{
		logger:         logger,
		followSymlinks: followSymlinks,
		visited:        make(map[string]bool),
	}
}

// SetWarningFunc sets the callback invoked for unreadable entries
func (w *Walker) SetWarningFunc(fn WarnFunc) {
	w.onWarning = fn
}

// ValidateRoot checks the walk precondition: the root must exist and be a
// directory. Returns ErrRootNotFound or ErrRootNotDirectory wrapped with
// the offending path.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%q: %w", root, ErrRootNotFound)
		}
		return fmt.Errorf("stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", root, ErrRootNotDirectory)
	}
	return nil
}

// Walk recursively walks the directory tree rooted at root, calling fn for
// every regular file. Unreadable entries produce a warning and the walk
// continues; only context cancellation or a callback error aborts it.
func (w *Walker) Walk(ctx context.Context, root string, fn func(*models.FileEntry) error) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", root, err)
	}
	if w.followSymlinks {
		if _, err := w.enter(absRoot); err != nil {
			return fmt.Errorf("resolve %q: %w", root, err)
		}
	}
	return w.walkDir(ctx, absRoot, fn)
}

func (w *Walker) walkDir(ctx context.Context, dir string, fn func(*models.FileEntry) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// os.ReadDir returns entries sorted by name
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.warn(dir, err)
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			if !w.followSymlinks {
				w.logger.Debug("Skipping symlink", zap.String("path", path))
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				w.warn(path, err)
				continue
			}
			mode = info.Mode()
		}

		switch {
		case mode.IsDir():
			if w.followSymlinks {
				ok, err := w.enter(path)
				if err != nil {
					w.warn(path, err)
					continue
				}
				if !ok {
					// Cycle or an alias of a directory already walked
					w.logger.Debug("Skipping already visited directory", zap.String("path", path))
					continue
				}
			}
			if err := w.walkDir(ctx, path, fn); err != nil {
				return err
			}
		case mode.IsRegular():
			info, err := entry.Info()
			if err != nil {
				w.warn(path, err)
				continue
			}
			size := info.Size()
			if mode != entry.Type() {
				// Symlink to a regular file, size comes from the target
				target, err := os.Stat(path)
				if err != nil {
					w.warn(path, err)
					continue
				}
				size = target.Size()
			}
			base, ext := SplitName(entry.Name())
			fe := &models.FileEntry{
				Path: path,
				Name: entry.Name(),
				Base: base,
				Ext:  ext,
				Size: size,
			}
			if err := fn(fe); err != nil {
				return err
			}
		default:
			// Sockets, devices, pipes carry no content to compare
			w.logger.Debug("Skipping irregular file", zap.String("path", path))
		}
	}

	return nil
}

// enter resolves a directory to its physical path and records it as walked.
// Returns false when that physical directory was already entered through
// any path, which covers both symlink cycles and aliased subtrees.
func (w *Walker) enter(dir string) (bool, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false, err
	}
	if w.visited[resolved] {
		return false, nil
	}
	w.visited[resolved] = true
	return true, nil
}

func (w *Walker) warn(path string, err error) {
	w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
	if w.onWarning != nil {
		w.onWarning(path, err.Error())
	}
}
