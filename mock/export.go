package mock

import (
	"context"

	"github.com/fwojciec/resumedb"
)

var _ resumedb.ExportStore = (*ExportStore)(nil)

// ExportStore is a mock implementation of resumedb.ExportStore.
type ExportStore struct {
	SaveFn   func(ctx context.Context, resume *resumedb.Resume) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ExportStore) Save(ctx context.Context, resume *resumedb.Resume) error {
	return s.SaveFn(ctx, resume)
}

func (s *ExportStore) Commit() error {
	return s.CommitFn()
}

func (s *ExportStore) Abort() error {
	return s.AbortFn()
}
