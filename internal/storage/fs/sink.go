// Package fs provides a filesystem-backed export sink, useful for
// local development and single-node deployments.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sink writes export files under a base directory.
type Sink struct {
	baseDir string
	mu      sync.RWMutex
}

// NewSink creates a filesystem sink rooted at baseDir.
func NewSink(baseDir string) (*Sink, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &Sink{baseDir: baseDir}, nil
}

// Put writes an export file, overwriting any previous file with the
// same name. Name may contain slashes; parent directories are created
// as needed.
func (s *Sink) Put(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// List returns the names of all export files under the base
// directory, relative to it.
func (s *Sink) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list export files: %w", err)
	}
	return names, nil
}

// resolve maps an export name to a path under baseDir, rejecting
// names that would escape it.
func (s *Sink) resolve(name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid export name: %q", name)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}
