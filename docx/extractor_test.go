package docx_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/docx"
	"github.com/fwojciec/resumedb/docx/docxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ resumedb.Extractor = docx.NewExtractor()
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("joins paragraphs with newlines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.docx")
		docxtest.Write(t, path, "Jane Doe", "Engineer", "Go & SQL")

		text, err := docx.NewExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nEngineer\nGo & SQL", text)
	})

	t.Run("returns single paragraph text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.docx")
		docxtest.Write(t, path, "Hello")

		text, err := docx.NewExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Hello", text)
	})

	t.Run("returns empty string for document without text", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.docx")
		docxtest.Write(t, path)

		text, err := docx.NewExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("reads a document without main part relationships", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "norels.docx")
		docxtest.WriteWithoutDocumentRels(t, path, "Hello")

		text, err := docx.NewExtractor().Extract(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Hello", text)
	})

	t.Run("returns EPARSE for an archive without word/document.xml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nodoc.docx")
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create("_rels/.rels")
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

		_, err = docx.NewExtractor().Extract(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})

	t.Run("returns EPARSE for a file that is not an archive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.docx")
		require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

		_, err := docx.NewExtractor().Extract(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})

	t.Run("returns EPARSE for malformed document XML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.docx")
		docxtest.WriteXML(t, path, "<w:document><w:body><w:p>")

		_, err := docx.NewExtractor().Extract(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("joins runs and renders tabs and breaks", func(t *testing.T) {
		t.Parallel()

		xml := `<w:document xmlns:w="urn:w"><w:body>` +
			`<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>Phone</w:t><w:tab/><w:t>555</w:t><w:br/><w:t>Email</w:t></w:r></w:p>` +
			`</w:body></w:document>`

		text, err := docx.Text(xml)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nPhone\t555\nEmail", text)
	})

	t.Run("includes table cell paragraphs in order", func(t *testing.T) {
		t.Parallel()

		xml := `<w:document xmlns:w="urn:w"><w:body>` +
			`<w:p><w:r><w:t>Before</w:t></w:r></w:p>` +
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
			`<w:p><w:r><w:t>After</w:t></w:r></w:p>` +
			`</w:body></w:document>`

		text, err := docx.Text(xml)

		require.NoError(t, err)
		assert.Equal(t, "Before\nCell\nAfter", text)
	})

	t.Run("skips deleted revisions and field codes", func(t *testing.T) {
		t.Parallel()

		xml := `<w:document xmlns:w="urn:w"><w:body>` +
			`<w:p><w:del><w:r><w:delText>old</w:delText></w:r></w:del><w:r><w:instrText>PAGE</w:instrText></w:r><w:ins><w:r><w:t>new</w:t></w:r></w:ins></w:p>` +
			`</w:body></w:document>`

		text, err := docx.Text(xml)

		require.NoError(t, err)
		assert.Equal(t, "new", text)
	})

	t.Run("returns EPARSE without a body", func(t *testing.T) {
		t.Parallel()

		_, err := docx.Text(`<w:document xmlns:w="urn:w"></w:document>`)

		require.Error(t, err)
		assert.Equal(t, resumedb.EPARSE, resumedb.ErrorCode(err))
	})
}
