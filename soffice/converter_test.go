package soffice_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/docx/docxtest"
	"github.com/fwojciec/resumedb/mock"
	"github.com/fwojciec/resumedb/soffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSoffice writes an executable that mimics soffice's argument handling
// and runs action with $outdir and $stem set.
func fakeSoffice(t *testing.T, action string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes require a POSIX shell")
	}

	script := `#!/bin/sh
outdir=""
in=""
while [ $# -gt 0 ]; do
	case "$1" in
	--outdir) outdir="$2"; shift ;;
	-*) ;;
	*) in="$1" ;;
	esac
	shift
done
base=$(basename "$in")
stem="${base%.*}"
` + action + "\n"

	path := filepath.Join(t.TempDir(), "soffice")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy resume.doc")
	require.NoError(t, os.WriteFile(path, []byte{0xD0, 0xCF, 0x11, 0xE0}, 0644))
	return path
}

func TestConverter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ resumedb.DocConverter = soffice.NewConverter()
}

func TestConverter_ConvertDoc(t *testing.T) {
	t.Parallel()

	t.Run("reads the converted docx", func(t *testing.T) {
		t.Parallel()

		fixture := filepath.Join(t.TempDir(), "fixture.docx")
		docxtest.Write(t, fixture, "Legacy", "Resume")
		bin := fakeSoffice(t, fmt.Sprintf(`cp %q "$outdir/$stem.docx"`, fixture))

		text, err := soffice.NewConverter(soffice.WithBinary(bin)).ConvertDoc(context.Background(), writeDoc(t))

		require.NoError(t, err)
		assert.Equal(t, "Legacy\nResume", text)
	})

	t.Run("returns ETOOL when the binary is missing", func(t *testing.T) {
		t.Parallel()

		conv := soffice.NewConverter(soffice.WithBinary("resumedb-no-such-soffice"))

		_, err := conv.ConvertDoc(context.Background(), writeDoc(t))

		require.Error(t, err)
		assert.Equal(t, resumedb.ETOOL, resumedb.ErrorCode(err))
		assert.Contains(t, resumedb.ErrorMessage(err), "not found")
	})

	t.Run("returns ETOOL with stderr on non-zero exit", func(t *testing.T) {
		t.Parallel()

		bin := fakeSoffice(t, `echo "source file could not be loaded" >&2; exit 3`)

		_, err := soffice.NewConverter(soffice.WithBinary(bin)).ConvertDoc(context.Background(), writeDoc(t))

		require.Error(t, err)
		assert.Equal(t, resumedb.ETOOL, resumedb.ErrorCode(err))
		assert.Contains(t, resumedb.ErrorMessage(err), "could not be loaded")
	})

	t.Run("returns EPARSE when no output is produced", func(t *testing.T) {
		t.Parallel()

		bin := fakeSoffice(t, `exit 0`)

		_, err := soffice.NewConverter(soffice.WithBinary(bin)).ConvertDoc(context.Background(), writeDoc(t))

		require.Error(t, err)
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})

	t.Run("returns EPARSE when output is unreadable", func(t *testing.T) {
		t.Parallel()

		bin := fakeSoffice(t, `echo junk > "$outdir/$stem.docx"`)

		_, err := soffice.NewConverter(soffice.WithBinary(bin)).ConvertDoc(context.Background(), writeDoc(t))

		require.Error(t, err)
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})

	t.Run("passes the converted file to the reader", func(t *testing.T) {
		t.Parallel()

		bin := fakeSoffice(t, `echo stub > "$outdir/$stem.docx"`)
		var readPath string
		reader := &mock.Extractor{
			ExtractFn: func(_ context.Context, path string) (string, error) {
				readPath = path
				return "converted", nil
			},
		}

		text, err := soffice.NewConverter(soffice.WithBinary(bin), soffice.WithReader(reader)).
			ConvertDoc(context.Background(), writeDoc(t))

		require.NoError(t, err)
		assert.Equal(t, "converted", text)
		assert.Equal(t, "legacy resume.docx", filepath.Base(readPath))
	})

	t.Run("returns ETOOL on timeout", func(t *testing.T) {
		t.Parallel()

		bin := fakeSoffice(t, `exec sleep 5`)
		conv := soffice.NewConverter(soffice.WithBinary(bin), soffice.WithTimeout(100*time.Millisecond))

		_, err := conv.ConvertDoc(context.Background(), writeDoc(t))

		require.Error(t, err)
		assert.Equal(t, resumedb.ETOOL, resumedb.ErrorCode(err))
		assert.Contains(t, resumedb.ErrorMessage(err), "timed out")
	})
}
