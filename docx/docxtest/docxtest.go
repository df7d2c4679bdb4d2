// Package docxtest builds minimal .docx files for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// DocumentXML returns word/document.xml content with one paragraph per entry
// followed by a section properties element tagged with sectID.
func DocumentXML(sectID string, paragraphs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString("<w:p><w:r><w:t xml:space=\"preserve\">")
		_ = xml.EscapeText(&b, []byte(p))
		b.WriteString("</w:t></w:r></w:p>")
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840" w:code="` + sectID + `"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// Bytes returns a .docx archive whose word/document.xml is documentXML.
func Bytes(tb testing.TB, documentXML string) []byte {
	tb.Helper()
	return archive(tb, documentXML, true)
}

// BytesWithoutDocumentRels is Bytes without word/_rels/document.xml.rels,
// as written for documents whose main part references nothing.
func BytesWithoutDocumentRels(tb testing.TB, documentXML string) []byte {
	tb.Helper()
	return archive(tb, documentXML, false)
}

type part struct{ name, body string }

func archive(tb testing.TB, documentXML string, withDocumentRels bool) []byte {
	tb.Helper()

	parts := []part{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", packageRels},
	}
	if withDocumentRels {
		parts = append(parts, part{"word/_rels/document.xml.rels", documentRels})
	}
	parts = append(parts, part{"word/document.xml", documentXML})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			tb.Fatalf("create %s: %v", p.name, err)
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			tb.Fatalf("write %s: %v", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// Write creates a .docx at path containing the given paragraphs.
func Write(tb testing.TB, path string, paragraphs ...string) {
	tb.Helper()
	WriteXML(tb, path, DocumentXML("main", paragraphs...))
}

// WriteXML creates a .docx at path with a custom word/document.xml.
func WriteXML(tb testing.TB, path, documentXML string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, Bytes(tb, documentXML), 0644); err != nil {
		tb.Fatalf("write docx: %v", err)
	}
}

// WriteWithoutDocumentRels creates a .docx at path containing the given
// paragraphs and no word/_rels/document.xml.rels part.
func WriteWithoutDocumentRels(tb testing.TB, path string, paragraphs ...string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	data := BytesWithoutDocumentRels(tb, DocumentXML("main", paragraphs...))
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatalf("write docx: %v", err)
	}
}
