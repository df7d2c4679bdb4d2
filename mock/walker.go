package mock

import (
	"iter"

	"github.com/fwojciec/resumedb"
)

var _ resumedb.Walker = (*Walker)(nil)

// Walker is a mock implementation of resumedb.Walker.
type Walker struct {
	WalkFn func(root string) iter.Seq2[string, error]
}

func (w *Walker) Walk(root string) iter.Seq2[string, error] {
	return w.WalkFn(root)
}

// Paths returns a sequence yielding each path with a nil error.
func Paths(paths ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(p, nil) {
				return
			}
		}
	}
}
