package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resumedb"
)

// Ensure LoggingResumeService implements resumedb.ResumeService.
var _ resumedb.ResumeService = (*LoggingResumeService)(nil)

// LoggingResumeService wraps a ResumeService and logs writes.
type LoggingResumeService struct {
	next   resumedb.ResumeService
	logger *slog.Logger
}

// NewLoggingResumeService creates a new LoggingResumeService.
func NewLoggingResumeService(next resumedb.ResumeService, logger *slog.Logger) *LoggingResumeService {
	return &LoggingResumeService{next: next, logger: logger}
}

// UpsertResume delegates to the wrapped service and logs the operation.
func (s *LoggingResumeService) UpsertResume(ctx context.Context, resume *resumedb.Resume) (changed bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert",
			"path", resume.Path,
			"bytes", len(resume.Content),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertResume(ctx, resume)
}

// FindResumeByPath delegates to the wrapped service.
func (s *LoggingResumeService) FindResumeByPath(ctx context.Context, path string) (*resumedb.Resume, error) {
	return s.next.FindResumeByPath(ctx, path)
}

// FindResumes delegates to the wrapped service.
func (s *LoggingResumeService) FindResumes(ctx context.Context, filter resumedb.ResumeFilter) ([]*resumedb.Resume, error) {
	return s.next.FindResumes(ctx, filter)
}

// CountResumes delegates to the wrapped service.
func (s *LoggingResumeService) CountResumes(ctx context.Context) (int, error) {
	return s.next.CountResumes(ctx)
}

// DeleteResume delegates to the wrapped service and logs the operation.
func (s *LoggingResumeService) DeleteResume(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteResume(ctx, path)
}
