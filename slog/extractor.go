package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/resumedb"
)

// Ensure LoggingExtractor implements resumedb.Extractor.
var _ resumedb.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   resumedb.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next resumedb.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
// Skipped files are logged at debug level without an error attribute.
func (e *LoggingExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		if resumedb.ErrorCode(err) == resumedb.EUNSUPPORTED {
			e.logger.Debug("skip", "path", path)
			return
		}
		e.logger.Info("extract",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}
