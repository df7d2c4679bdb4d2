package mock

import (
	"context"

	"github.com/fwojciec/resumedb"
)

var _ resumedb.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of resumedb.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	return e.ExtractFn(ctx, path)
}

var _ resumedb.DocConverter = (*DocConverter)(nil)

// DocConverter is a mock implementation of resumedb.DocConverter.
type DocConverter struct {
	ConvertDocFn func(ctx context.Context, path string) (string, error)
}

func (c *DocConverter) ConvertDoc(ctx context.Context, path string) (string, error) {
	return c.ConvertDocFn(ctx, path)
}
