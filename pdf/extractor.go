// Package pdf extracts text from PDF files using ledongthuc/pdf.
package pdf

import (
	"context"
	"strings"

	"github.com/fwojciec/resumedb"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements resumedb.Extractor at compile time.
var _ resumedb.Extractor = (*Extractor)(nil)

// Extractor extracts text from .pdf files page by page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of every page, pages joined by newlines.
// Pages without text, such as scanned images, contribute nothing.
func (e *Extractor) Extract(ctx context.Context, path string) (text string, err error) {
	// The parser panics on some malformed structures.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = resumedb.Errorf(resumedb.EPARSE, "parse pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", resumedb.WrapError(resumedb.EPARSE, err, "open pdf %s", path)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", resumedb.WrapError(resumedb.EPARSE, err, "read page %d of %s", i, path)
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			pages = append(pages, pageText)
		}
	}

	return strings.Join(pages, "\n"), nil
}
