// Package fs provides filesystem traversal and file-based export of resumes.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/fwojciec/resumedb"
)

// Ensure Walker implements resumedb.Walker at compile time.
var _ resumedb.Walker = (*Walker)(nil)

// Walker enumerates regular files with filepath.WalkDir.
// A symlinked root is followed. Symbolic links below the root are reported by
// WalkDir but never followed, and are not yielded.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every regular file under root, lazily.
// Paths are reported under root as given, even when root is a symlink.
func (w *Walker) Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walkRoot := root
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			walkRoot = resolved
		}

		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			isRoot := path == walkRoot
			path = underRoot(root, walkRoot, path)
			if err != nil {
				// The root itself cannot be read: nothing else to walk.
				if isRoot {
					yield(path, err)
					return filepath.SkipAll
				}
				if !yield(path, err) {
					return filepath.SkipAll
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// underRoot maps a path below walkRoot back below root.
func underRoot(root, walkRoot, path string) string {
	if walkRoot == root {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}
