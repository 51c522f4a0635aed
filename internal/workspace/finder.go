// Package workspace resolves bare type names to source files by walking
// the project tree with include/exclude glob patterns.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Finder walks a workspace root looking for C# source files.
type Finder struct {
	includes []string
	excludes []string
}

// NewFinder creates a finder with the given glob patterns. An empty include
// list matches every .cs file.
func NewFinder(includes, excludes []string) *Finder {
	if len(includes) == 0 {
		includes = []string{"**/*.cs"}
	}
	return &Finder{includes: includes, excludes: excludes}
}

// FindInterfaceFile resolves a bare interface name (e.g. "IDice") to the
// path of a file under root that declares it. Candidate files named
// <name>.cs are preferred; otherwise the first included file whose text
// declares the interface wins. Returns "" when nothing matches.
func (f *Finder) FindInterfaceFile(root, name string) (string, error) {
	files, err := f.Walk(root)
	if err != nil {
		return "", err
	}

	for _, path := range files {
		if strings.TrimSuffix(filepath.Base(path), ".cs") == name {
			return path, nil
		}
	}

	decl := "interface " + name
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.Contains(string(data), decl) {
			return path, nil
		}
	}
	return "", nil
}

// Walk returns every file under root matching the include patterns and not
// matching the exclude patterns, in walk order.
func (f *Finder) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if f.excluded(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if f.excluded(rel) {
			return nil
		}
		for _, pattern := range f.includes {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (f *Finder) excluded(rel string) bool {
	for _, pattern := range f.excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
