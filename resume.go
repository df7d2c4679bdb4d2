package resumedb

import (
	"context"
	"time"
)

// Resume represents one scanned resume file.
// Path is the natural key: at most one Resume exists per distinct path.
type Resume struct {
	Path        string    `json:"path"`
	Filename    string    `json:"filename"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	ScannedAt   time.Time `json:"scannedAt"`

	// Sections holds the parsed layout of Content, if any.
	Sections *Sections `json:"sections,omitempty"`
}

// Validate returns an error if the resume contains invalid fields.
func (r *Resume) Validate() error {
	if r.Path == "" {
		return Errorf(EINVALID, "resume path required")
	}
	return nil
}

// ResumeService represents a service for managing stored resumes.
type ResumeService interface {
	// UpsertResume inserts the resume or replaces the row with the same path.
	// Reports whether the stored content changed.
	UpsertResume(ctx context.Context, resume *Resume) (bool, error)

	// FindResumeByPath retrieves a resume by path.
	// Returns ENOTFOUND if resume does not exist.
	FindResumeByPath(ctx context.Context, path string) (*Resume, error)

	// FindResumes retrieves resumes matching the filter, ordered by path.
	FindResumes(ctx context.Context, filter ResumeFilter) ([]*Resume, error)

	// CountResumes returns the number of stored resumes.
	CountResumes(ctx context.Context) (int, error)

	// DeleteResume permanently removes a resume and its parsed sections.
	// Returns ENOTFOUND if resume does not exist.
	DeleteResume(ctx context.Context, path string) error
}

// ResumeFilter represents a filter for FindResumes.
type ResumeFilter struct {
	Path *string `json:"path"`

	// Filename matches resumes whose filename contains the value, case-insensitively.
	Filename *string `json:"filename"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
