package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/mock"
	rslog "github.com/fwojciec/resumedb/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ context.Context, _ string) (string, error) {
				return "Jane Doe", nil
			},
		}

		ext := rslog.NewLoggingExtractor(inner, logger)
		text, err := ext.Extract(context.Background(), "/r/jane.docx")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", text)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "path=/r/jane.docx")
		assert.Contains(t, output, "bytes=8")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("bad zip")
			},
		}

		ext := rslog.NewLoggingExtractor(inner, logger)
		_, err := ext.Extract(context.Background(), "/r/jane.docx")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad zip\"")
	})

	t.Run("logs skips at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(_ context.Context, _ string) (string, error) {
				return "", resumedb.Errorf(resumedb.EUNSUPPORTED, "unsupported file type")
			},
		}

		ext := rslog.NewLoggingExtractor(inner, logger)
		_, err := ext.Extract(context.Background(), "/r/notes.txt")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=skip")
		assert.NotContains(t, output, "err=")
	})
}
