// Package soffice converts legacy .doc files by shelling out to LibreOffice.
package soffice

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/docx"
)

// DefaultBinary is the LibreOffice executable looked up on PATH.
const DefaultBinary = "soffice"

const waitDelay = 5 * time.Second

// Ensure Converter implements resumedb.DocConverter at compile time.
var _ resumedb.DocConverter = (*Converter)(nil)

// Converter renders .doc files to .docx with a headless LibreOffice and reads
// the result with a DOCX extractor.
type Converter struct {
	binary  string
	timeout time.Duration
	reader  resumedb.Extractor
}

// Option configures a Converter.
type Option func(*Converter)

// WithBinary sets the converter executable. Defaults to DefaultBinary.
func WithBinary(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.binary = name
		}
	}
}

// WithTimeout bounds each conversion. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		c.timeout = d
	}
}

// WithReader sets the extractor used on the converted .docx.
func WithReader(e resumedb.Extractor) Option {
	return func(c *Converter) {
		c.reader = e
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		binary: DefaultBinary,
		reader: docx.NewExtractor(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertDoc converts the .doc at path and returns its text.
func (c *Converter) ConvertDoc(ctx context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	tmp, err := os.MkdirTemp("", "resumedb-doc-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmp)

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// A private profile keeps a running desktop LibreOffice from
	// swallowing the request.
	profile := "-env:UserInstallation=file://" + filepath.ToSlash(filepath.Join(tmp, "profile"))
	cmd := exec.CommandContext(runCtx, c.binary,
		profile,
		"--headless",
		"--convert-to", "docx",
		"--outdir", tmp,
		abs,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// soffice forks soffice.bin; do not wait forever on its pipes after a kill.
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", resumedb.WrapError(resumedb.ETOOL, err, "converter %q not found on PATH", c.binary)
		}
		if runCtx.Err() != nil {
			return "", resumedb.Errorf(resumedb.ETOOL, "converter timed out after %s on %s", c.timeout, path)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", resumedb.WrapError(resumedb.ETOOL, err, "convert %s: %s", path, msg)
		}
		return "", resumedb.WrapError(resumedb.ETOOL, err, "convert %s", path)
	}

	stem := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	out := filepath.Join(tmp, stem+".docx")
	if _, err := os.Stat(out); err != nil {
		return "", resumedb.Errorf(resumedb.EPARSE, "converter produced no output for %s", path)
	}

	text, err := c.reader.Extract(ctx, out)
	if err != nil {
		return "", resumedb.WrapError(resumedb.EPARSE, err, "read converted %s", path)
	}
	return text, nil
}
