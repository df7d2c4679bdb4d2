package mock

import (
	"context"

	"github.com/fwojciec/resumedb"
)

var _ resumedb.Asker = (*Asker)(nil)

// Asker is a mock implementation of resumedb.Asker.
type Asker struct {
	AskFn func(ctx context.Context, filter resumedb.ResumeFilter, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, filter resumedb.ResumeFilter, question string) (string, error) {
	return a.AskFn(ctx, filter, question)
}
