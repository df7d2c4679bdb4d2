package resumedb

import "context"

// ExportStore writes resume text outside the database.
// Saved resumes become visible only after Commit.
type ExportStore interface {
	Save(ctx context.Context, resume *Resume) error
	Commit() error
	Abort() error
}
