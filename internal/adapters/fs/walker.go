// Package fs provides file system adapters for walking, hashing and
// scanning directory trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker yields the files below a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all regular files under root as paths starting with
// root, skipping VCS metadata and anything matching the ignore patterns.
// Ignore patterns match base names, as in filepath.Match.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip := w.skip(d, ignores); skip != nil {
				return skip
			}
			if d.IsDir() {
				return nil
			}
			if ignored(d.Name(), ignores) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// skip reports whether the walk should descend into the entry.
func (w *Walker) skip(d fs.DirEntry, ignores []string) error {
	if !d.IsDir() {
		return nil
	}
	name := d.Name()
	if name == ".git" || name == ".jj" {
		return filepath.SkipDir
	}
	if ignored(name, ignores) {
		return filepath.SkipDir
	}
	return nil
}

func ignored(name string, ignores []string) bool {
	for _, pattern := range ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
