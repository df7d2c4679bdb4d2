package mock

import (
	"context"

	"github.com/fwojciec/resumedb"
)

var _ resumedb.ResumeService = (*ResumeService)(nil)

// ResumeService is a mock implementation of resumedb.ResumeService.
type ResumeService struct {
	UpsertResumeFn     func(ctx context.Context, resume *resumedb.Resume) (bool, error)
	FindResumeByPathFn func(ctx context.Context, path string) (*resumedb.Resume, error)
	FindResumesFn      func(ctx context.Context, filter resumedb.ResumeFilter) ([]*resumedb.Resume, error)
	CountResumesFn     func(ctx context.Context) (int, error)
	DeleteResumeFn     func(ctx context.Context, path string) error
}

func (s *ResumeService) UpsertResume(ctx context.Context, resume *resumedb.Resume) (bool, error) {
	return s.UpsertResumeFn(ctx, resume)
}

func (s *ResumeService) FindResumeByPath(ctx context.Context, path string) (*resumedb.Resume, error) {
	return s.FindResumeByPathFn(ctx, path)
}

func (s *ResumeService) FindResumes(ctx context.Context, filter resumedb.ResumeFilter) ([]*resumedb.Resume, error) {
	return s.FindResumesFn(ctx, filter)
}

func (s *ResumeService) CountResumes(ctx context.Context) (int, error) {
	return s.CountResumesFn(ctx)
}

func (s *ResumeService) DeleteResume(ctx context.Context, path string) error {
	return s.DeleteResumeFn(ctx, path)
}
