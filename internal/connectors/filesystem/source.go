// Package filesystem provides a document source that reads a local directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source lists and reads documents directly under a root directory.
// Subdirectories are not descended into.
type Source struct {
	rootPath  string
	extension string
}

// New creates a new filesystem document source.
// Extension is matched case-insensitively and may be given with or without the dot.
func New(rootPath, extension string) *Source {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &Source{
		rootPath:  ResolvePath(rootPath),
		extension: strings.ToLower(extension),
	}
}

// Location returns the root directory.
func (s *Source) Location() string {
	return s.rootPath
}

// List returns the names of matching regular files, sorted lexicographically.
func (s *Source) List(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.rootPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocsDirNotFound, s.rootPath)
		}
		return nil, fmt.Errorf("stat %s: %w", s.rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrDocsDirNotFound, s.rootPath)
	}

	entries, err := os.ReadDir(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.rootPath, err)
	}

	var names []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.matches(entry) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Read loads the whole document into memory.
func (s *Source) Read(ctx context.Context, name string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("%w: document name %q", domain.ErrInvalidInput, name)
	}

	path := filepath.Join(s.rootPath, name)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &domain.Document{
		Name:    name,
		Path:    path,
		Content: string(content),
	}, nil
}

// matches reports whether a directory entry is a document to index.
// Symlinks are followed so mounted ConfigMap layouts (..data links) resolve.
func (s *Source) matches(entry fs.DirEntry) bool {
	if s.extension != "" && strings.ToLower(filepath.Ext(entry.Name())) != s.extension {
		return false
	}
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(s.rootPath, entry.Name()))
		return err == nil && info.Mode().IsRegular()
	}
	return false
}
