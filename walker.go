package resumedb

import "iter"

// Walker enumerates files below a root directory.
type Walker interface {
	// Walk yields the path of every regular file under root.
	// Order follows the filesystem and is not guaranteed to be sorted.
	// A directory that cannot be read yields a non-nil error and the walk continues.
	Walk(root string) iter.Seq2[string, error]
}
