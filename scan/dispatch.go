package scan

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/resumedb"
)

// Compile-time interface verification.
var _ resumedb.Extractor = (*Dispatcher)(nil)

// Dispatcher routes a file to the extractor registered for its format.
type Dispatcher struct {
	DOCX resumedb.Extractor
	DOC  resumedb.Extractor
	PDF  resumedb.Extractor
}

// Extract extracts text with the extractor matching the extension of path.
// Unsupported extensions and formats without an extractor return EUNSUPPORTED.
func (d *Dispatcher) Extract(ctx context.Context, path string) (string, error) {
	format, ok := resumedb.FormatFromPath(path)
	if !ok {
		return "", resumedb.Errorf(resumedb.EUNSUPPORTED, "unsupported file type %q", filepath.Ext(path))
	}

	var ext resumedb.Extractor
	switch format {
	case resumedb.FormatDOCX:
		ext = d.DOCX
	case resumedb.FormatDOC:
		ext = d.DOC
	case resumedb.FormatPDF:
		ext = d.PDF
	}
	if ext == nil {
		return "", resumedb.Errorf(resumedb.EUNSUPPORTED, "no extractor for %s files", format)
	}

	return ext.Extract(ctx, path)
}
