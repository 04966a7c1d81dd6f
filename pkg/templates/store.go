// Package templates supplies raw YAML template text by name. The engine
// only consumes the returned text; whether it comes from a directory, an
// embedded fs.FS, or anything else is the store's business.
package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound reports a template name the store does not know.
var ErrNotFound = errors.New("templates: not found")

// NotFoundError wraps ErrNotFound with the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("templates: %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Store lists and loads templates by name.
type Store interface {
	// List returns the known template names in a stable order.
	List() ([]string, error)
	// Load returns the raw YAML text for name, or an error wrapping
	// ErrNotFound when the name is unknown.
	Load(name string) (string, error)
}

// DirStore serves *.yml and *.yaml files from one directory, sorted by
// file name.
type DirStore struct {
	dir string
}

// NewDirStore builds a store over the given directory.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: filepath.Clean(dir)}
}

// List returns the template file names in the directory. A missing
// directory lists as empty rather than failing, so a fresh checkout works
// before any template exists.
func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("templates: read dir %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isTemplateName(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the named template file.
func (s *DirStore) Load(name string) (string, error) {
	if !isTemplateName(name) || name != filepath.Base(name) {
		return "", &NotFoundError{Name: name}
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Name: name}
		}
		return "", fmt.Errorf("templates: read %s: %w", name, err)
	}
	return string(data), nil
}

// FSStore serves templates from any fs.FS, letting callers embed them in
// the binary.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore builds a store over the given filesystem.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// List walks the filesystem and returns every template path, sorted.
func (s *FSStore) List() ([]string, error) {
	if s.fsys == nil {
		return nil, nil
	}
	var names []string
	err := fs.WalkDir(s.fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateName(path) {
			return nil
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("templates: walk fs: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the named template from the filesystem.
func (s *FSStore) Load(name string) (string, error) {
	if s.fsys == nil || !isTemplateName(name) {
		return "", &NotFoundError{Name: name}
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Name: name}
		}
		return "", fmt.Errorf("templates: read %s: %w", name, err)
	}
	return string(data), nil
}

func isTemplateName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
