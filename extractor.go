package resumedb

import (
	"context"
	"path/filepath"
	"strings"
)

// Format identifies a supported resume document format.
type Format string

// Supported formats.
const (
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatPDF  Format = "pdf"
)

// FormatFromPath returns the format for the file extension of path.
// The lowercased extension must match exactly; anything else is unsupported.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDOCX, true
	case ".doc":
		return FormatDOC, true
	case ".pdf":
		return FormatPDF, true
	}
	return "", false
}

// Extractor extracts plain text from a document file.
type Extractor interface {
	// Extract reads the file at path and returns its text.
	// A structurally valid file without text returns an empty string.
	// Malformed documents return EPARSE.
	Extract(ctx context.Context, path string) (string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, path string) (string, error)

// Extract calls f(ctx, path).
func (f ExtractorFunc) Extract(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}
