package docx

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/resumedb"
	"github.com/nguyenthenguyen/docx"
)

// Merge appends the body of second to the body of first and writes the
// result to out. Every part other than word/document.xml is taken from first,
// so images or styles referenced only by second are not carried over.
func Merge(first, second, out string) error {
	a, err := docx.ReadDocxFile(first)
	if err != nil {
		return resumedb.WrapError(resumedb.EPARSE, err, "open docx %s", first)
	}
	defer a.Close()

	secondXML, err := readDocumentXML(second)
	if err != nil {
		return resumedb.WrapError(resumedb.EPARSE, err, "open docx %s", second)
	}

	edit := a.Editable()
	merged, err := MergeXML(edit.GetContent(), secondXML)
	if err != nil {
		return err
	}

	edit.SetContent(merged)
	return edit.WriteToFile(out)
}

// MergeXML merges two word/document.xml payloads.
// The final section properties come from second when it has them.
func MergeXML(first, second string) (string, error) {
	docA := etree.NewDocument()
	if err := docA.ReadFromString(first); err != nil {
		return "", resumedb.WrapError(resumedb.EPARSE, err, "parse first document")
	}
	docB := etree.NewDocument()
	if err := docB.ReadFromString(second); err != nil {
		return "", resumedb.WrapError(resumedb.EPARSE, err, "parse second document")
	}

	bodyA := docA.FindElement("//" + wordNS + ":body")
	bodyB := docB.FindElement("//" + wordNS + ":body")
	if bodyA == nil || bodyB == nil {
		return "", resumedb.Errorf(resumedb.EPARSE, "document has no body")
	}

	copyNamespaces(docA.Root(), docB.Root())

	sectA := bodyA.SelectElement(wordNS + ":sectPr")
	sectB := bodyB.SelectElement(wordNS + ":sectPr")
	if sectA != nil && sectB != nil {
		bodyA.RemoveChild(sectA)
	}

	for _, child := range bodyB.ChildElements() {
		if isWord(child, "sectPr") {
			continue
		}
		insertBeforeSection(bodyA, child.Copy())
	}
	if sectB != nil {
		bodyA.AddChild(sectB.Copy())
	}

	return docA.WriteToString()
}

// insertBeforeSection appends e to body, keeping a trailing sectPr last.
func insertBeforeSection(body, e *etree.Element) {
	if sect := body.SelectElement(wordNS + ":sectPr"); sect != nil {
		body.InsertChildAt(sect.Index(), e)
		return
	}
	body.AddChild(e)
}

// copyNamespaces declares on dst every prefix declared on src that dst lacks.
func copyNamespaces(dst, src *etree.Element) {
	if dst == nil || src == nil {
		return
	}
	for _, attr := range src.Attr {
		if attr.Space != "xmlns" {
			continue
		}
		key := "xmlns:" + attr.Key
		if dst.SelectAttr(key) == nil {
			dst.CreateAttr(key, attr.Value)
		}
	}
}
