package formlang

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceLoader resolves a `load` hook's import path against the file
// it appears in and returns that unit's bytes. File discovery and
// encoding are the driver's concern; the core
// only needs this much to splice a loaded unit's term into the tree
// it is reducing.
type SourceLoader interface {
	GetPath(importPath, parentPath string) (string, error)
	GetContent(path string) ([]byte, error)
}

// RelativeSourceLoader resolves `./`-relative import paths against the
// real filesystem, serving this core's `load` hook.
type RelativeSourceLoader struct{}

func NewRelativeSourceLoader() *RelativeSourceLoader { return &RelativeSourceLoader{} }

func (l *RelativeSourceLoader) GetPath(importPath, parentPath string) (string, error) {
	return resolveRelativePath(importPath, parentPath)
}

func (l *RelativeSourceLoader) GetContent(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// InMemorySourceLoader serves pre-registered contents by path, used by
// tests that exercise `load` without touching the filesystem.
type InMemorySourceLoader struct{ files map[string][]byte }

func NewInMemorySourceLoader() *InMemorySourceLoader {
	return &InMemorySourceLoader{files: map[string][]byte{}}
}

func (l *InMemorySourceLoader) Add(path string, content []byte) {
	l.files[path] = content
}

func (l *InMemorySourceLoader) GetPath(importPath, parentPath string) (string, error) {
	return resolveRelativePath(importPath, parentPath)
}

func (l *InMemorySourceLoader) GetContent(path string) ([]byte, error) {
	b, ok := l.files[path]
	if !ok {
		return nil, fmt.Errorf("load: not found: %s", path)
	}
	return b, nil
}

func resolveRelativePath(importPath, parentPath string) (string, error) {
	if importPath == parentPath {
		return importPath, nil
	}
	if len(importPath) < 4 {
		return "", fmt.Errorf("load: path too short, should start with ./: %s", importPath)
	}
	if importPath[:2] != "./" {
		return "", fmt.Errorf("load: path isn't relative to the import site: %s", importPath)
	}
	return filepath.Join(filepath.Dir(parentPath), importPath[2:]), nil
}
