package html

import (
	"bytes"
	"io"
)

// Content is anything that can be appended to HTML as prerendered markup.  It is included in a document with
// Include.
type Content interface {
	AppendHTML(buf []byte) []byte
}

// Append appends the HTML from each of its contents to the provided buffer.
func Append(buf []byte, contents ...Content) []byte {
	for _, content := range contents {
		buf = content.AppendHTML(buf)
	}
	return buf
}

// Static is prerendered markup, which is included verbatim.
type Static []byte

// AppendHTML implements Content.
func (s Static) AppendHTML(buf []byte) []byte { return append(buf, s...) }

func (s Static) String() string { return string(s) }

// A Fragment renders content into a Document.  The Document is the universal content model, so a Fragment can
// write any element; this makes Fragments useful for partial page updates, like a single table row.
type Fragment func(doc *Document)

// AppendHTML implements Content by rendering the fragment without whitespace.  It panics with a *StateError if
// the fragment leaves an element open.
func (f Fragment) AppendHTML(buf []byte) []byte {
	w := bytes.NewBuffer(buf)
	doc := New(w, Compact())
	f(doc)
	if err := doc.Close(); err != nil {
		panic(err)
	}
	return w.Bytes()
}

// Capture renders fn into Static content, which is useful for markup that is repeated on every page.
func Capture(fn func(doc *Document), options ...Option) (Static, error) {
	var buf bytes.Buffer
	err := Render(&buf, fn, options...)
	return Static(buf.Bytes()), err
}

// Render writes the document produced by fn to w, then closes it.
func Render(w io.Writer, fn func(doc *Document), options ...Option) error {
	doc := New(w, options...)
	fn(doc)
	return doc.Close()
}
