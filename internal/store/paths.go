package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/data-catalog/internal/logger"
)

// secretsSuffix is appended to a record file name to form its sidecar.
const secretsSuffix = ".secrets"

// pathGuard turns (partition, id) pairs into file paths that are guaranteed
// to stay inside the data root.
type pathGuard struct {
	// root is the symlink-resolved absolute data root.
	root   string
	logger *logger.Logger
}

func newPathGuard(dataDir string, logger *logger.Logger) (*pathGuard, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: data directory %q does not exist", ErrConfiguration, dataDir)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: data directory %q is not a directory", ErrConfiguration, dataDir)
	}

	return &pathGuard{root: root, logger: logger}, nil
}

// resolve returns the path of an existing regular file dataRoot/partition/id.
// Anything else, including a path whose canonical form escapes the root,
// yields ErrNotFound.
func (g *pathGuard) resolve(partition, id string) (string, error) {
	candidate := filepath.Join(g.root, partition, id)
	if err := g.checkRegular(candidate); err != nil {
		return "", err
	}
	return candidate, nil
}

// sidecar returns the sidecar path of a resolved record path and whether a
// sidecar is present there.
func (g *pathGuard) sidecar(recordPath string) (string, bool, error) {
	path := recordPath + secretsSuffix
	if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
		return path, false, nil
	}
	if err := g.checkRegular(path); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// exists reports whether anything occupies dataRoot/partition/name.
func (g *pathGuard) exists(partition, name string) bool {
	_, err := os.Lstat(filepath.Join(g.root, partition, name))
	return !errors.Is(err, fs.ErrNotExist)
}

// ensurePartition creates the partition directory if needed and returns its
// path. Concurrent first use is safe.
func (g *pathGuard) ensurePartition(partition string) (string, error) {
	dir := filepath.Join(g.root, partition)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create partition directory: %w", err)
	}

	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("resolve partition directory: %w", err)
	}
	if !g.contains(canonical) {
		g.logger.Error().Str("path", dir).Msg("partition escapes the data directory")
		return "", ErrNotFound
	}
	return dir, nil
}

func (g *pathGuard) checkRegular(path string) error {
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		return ErrNotFound
	}
	if !g.contains(canonical) {
		g.logger.Error().Str("path", path).Msg("requested path escapes the data directory")
		return ErrNotFound
	}

	info, err := os.Stat(canonical)
	if err != nil || !info.Mode().IsRegular() {
		return ErrNotFound
	}
	return nil
}

// contains reports whether path lies strictly below the root. The check is
// done on path components so "/data-other" is not inside "/data".
func (g *pathGuard) contains(path string) bool {
	rel, err := filepath.Rel(g.root, path)
	if err != nil || filepath.IsAbs(rel) {
		return false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}
