package resumedb

import "context"

// DocConverter converts legacy binary Word documents to text.
type DocConverter interface {
	// ConvertDoc renders the .doc file at path and returns its text.
	// Returns ETOOL if the converter is missing or fails,
	// and EPARSE if its output cannot be read.
	ConvertDoc(ctx context.Context, path string) (string, error)
}
