package resumedb

import "context"

// Asker provides natural language question answering over stored resumes.
type Asker interface {
	// Ask answers a question using the resumes matching filter.
	// Returns ENOTFOUND if no resumes match.
	Ask(ctx context.Context, filter ResumeFilter, question string) (string, error)
}
