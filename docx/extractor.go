// Package docx reads and merges Office Open XML word-processing documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/resumedb"
	"github.com/nguyenthenguyen/docx"
)

// Ensure Extractor implements resumedb.Extractor at compile time.
var _ resumedb.Extractor = (*Extractor)(nil)

// wordNS is the namespace prefix Word writes for WordprocessingML.
const wordNS = "w"

// Extractor extracts paragraph text from .docx files.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of every paragraph in document order, one per line.
// Paragraphs inside tables and text boxes are included.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	documentXML, err := readDocumentXML(path)
	if err != nil {
		return "", resumedb.WrapError(resumedb.EPARSE, err, "open docx %s", path)
	}

	text, err := Text(documentXML)
	if err != nil {
		return "", resumedb.WrapError(resumedb.EPARSE, err, "parse docx %s", path)
	}
	return text, nil
}

// readDocumentXML returns word/document.xml of the .docx at path.
// Packages without word/_rels/document.xml.rels are read straight from the archive.
func readDocumentXML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err == nil {
		defer r.Close()
		return r.Editable().GetContent(), nil
	}

	zr, zerr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zerr != nil {
		return "", err
	}
	f, ferr := zr.Open("word/document.xml")
	if ferr != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Text extracts paragraph text from the XML of word/document.xml.
func Text(documentXML string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(documentXML); err != nil {
		return "", err
	}

	body := doc.FindElement("//" + wordNS + ":body")
	if body == nil {
		return "", resumedb.Errorf(resumedb.EPARSE, "document has no body")
	}

	var paragraphs []string
	collectParagraphs(body, &paragraphs)
	return strings.Join(paragraphs, "\n"), nil
}

func isWord(e *etree.Element, tag string) bool {
	return e.Space == wordNS && e.Tag == tag
}

func collectParagraphs(e *etree.Element, paragraphs *[]string) {
	for _, child := range e.ChildElements() {
		if !isWord(child, "p") {
			collectParagraphs(child, paragraphs)
			continue
		}
		var sb strings.Builder
		var nested []string
		paragraphText(child, &sb, &nested)
		*paragraphs = append(*paragraphs, sb.String())
		*paragraphs = append(*paragraphs, nested...)
	}
}

// paragraphText writes the visible text of a paragraph's runs.
// Paragraphs nested inside it (text boxes) are collected separately.
func paragraphText(e *etree.Element, sb *strings.Builder, nested *[]string) {
	for _, child := range e.ChildElements() {
		switch {
		case isWord(child, "t"):
			sb.WriteString(child.Text())
		case isWord(child, "tab"):
			sb.WriteByte('\t')
		case isWord(child, "br"), isWord(child, "cr"):
			sb.WriteByte('\n')
		case isWord(child, "p"):
			var inner strings.Builder
			paragraphText(child, &inner, nested)
			*nested = append(*nested, inner.String())
		case isWord(child, "delText"), isWord(child, "instrText"), isWord(child, "pPr"), isWord(child, "rPr"):
			// deleted revisions, field codes and formatting carry no visible text
		default:
			paragraphText(child, sb, nested)
		}
	}
}
