package scan_test

import (
	"context"
	"testing"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/mock"
	"github.com/fwojciec/resumedb/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticExtractor(text string) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(_ context.Context, _ string) (string, error) {
			return text, nil
		},
	}
}

func TestDispatcher_Extract(t *testing.T) {
	t.Parallel()

	d := &scan.Dispatcher{
		DOCX: staticExtractor("docx"),
		DOC:  staticExtractor("doc"),
		PDF:  staticExtractor("pdf"),
	}

	tests := []struct {
		path string
		want string
	}{
		{"/r/a.docx", "docx"},
		{"/r/a.DOCX", "docx"},
		{"/r/b.doc", "doc"},
		{"/r/c.Pdf", "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := d.Extract(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("skips unsupported extensions", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/r/notes.txt", "/r/a.docx.bak", "/r/README", "/r/a.docm"} {
			_, err := d.Extract(context.Background(), path)
			assert.Equal(t, resumedb.EUNSUPPORTED, resumedb.ErrorCode(err), path)
		}
	})

	t.Run("skips formats without an extractor", func(t *testing.T) {
		t.Parallel()

		d := &scan.Dispatcher{DOCX: staticExtractor("docx")}

		_, err := d.Extract(context.Background(), "/r/b.doc")
		assert.Equal(t, resumedb.EUNSUPPORTED, resumedb.ErrorCode(err))
	})

	t.Run("passes extractor errors through", func(t *testing.T) {
		t.Parallel()

		d := &scan.Dispatcher{
			PDF: &mock.Extractor{
				ExtractFn: func(_ context.Context, _ string) (string, error) {
					return "", resumedb.Errorf(resumedb.EPARSE, "corrupt")
				},
			},
		}

		_, err := d.Extract(context.Background(), "/r/c.pdf")
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})
}
