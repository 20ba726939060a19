// Package html implements a type safe model of HTML content that streams markup to an io.Writer as it is
// built.  Every element is opened by a factory method on a content model, such as *Flow or *Phrasing, and only
// the content models that HTML permits an element in have a factory for it, so illegal nesting is rejected by
// the compiler.  Closing an element returns its parent's content model for further chaining.
//
//	doc := html.New(w)
//	doc.Doctype()
//	doc.HTML().Lang(`en`).With(func(root *html.Sections) {
//		root.Head().With(func(head *html.Metadata) {
//			head.Title().Text(`Hello`)
//		})
//		root.Body().With(func(body *html.Flow) {
//			body.Div().Class(`greeting`).With(func(div *html.Flow) {
//				div.Span().Text(`Hello`)
//			})
//		})
//	})
//	err := doc.Close()
//
// A Document is not a DOM; nothing is retained once it is written.  It is not safe for concurrent use.
package html

import (
	"errors"
	"fmt"
	"io"

	"github.com/swdunlop/fluent-html-go/encode"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// A Document writes HTML to an output stream.  The Document is also the universal content model: it has a
// factory for every element, so fragments such as a lone table row can be rendered for partial page updates.
type Document struct {
	flowLeaves[*Document]
	metadataFactory[*Document]
	rootFactory[*Document]
	sectionsFactory[*Document]
	listItemFactory[*Document]
	termFactory[*Document]
	tablePartFactory[*Document]
	rowFactory[*Document]
	cellFactory[*Document]
	columnFactory[*Document]
	optionFactory[*Document]
	optgroupFactory[*Document]
	figcaptionFactory[*Document]
	summaryFactory[*Document]
	legendFactory[*Document]
	sourceFactory[*Document]
	trackFactory[*Document]

	out      io.Writer
	flush    io.Closer // flushes the charset transformer, if any
	cfg      config
	err      error
	released bool

	depth int
	pre   int  // > 0 while inside preformatted content
	bol   bool // the next byte written starts a line
	lead  bool // a line break written next would be dropped by parsers, as after <pre>

	pending     uint64 // serial of the start tag still accepting attributes
	pendingName string
	serial      uint64

	scratch []byte
	scopes  scopes
}

// New returns a Document that writes to w.  An unknown charset is not reported here; it is recorded as the
// Document's error, like a write error, and reported by Err and Close.
func New(w io.Writer, options ...Option) *Document {
	doc := &Document{cfg: defaultConfig(), out: w, bol: true, scratch: make([]byte, 0, 256)}
	for _, option := range options {
		option(&doc.cfg)
	}
	doc.setCharset()
	s := at(doc, doc)
	doc.flowLeaves = bindFlowLeaves(s)
	doc.metadataFactory = metadataFactory[*Document]{s}
	doc.rootFactory = rootFactory[*Document]{s}
	doc.sectionsFactory = sectionsFactory[*Document]{s}
	doc.listItemFactory = listItemFactory[*Document]{s}
	doc.termFactory = termFactory[*Document]{s}
	doc.tablePartFactory = tablePartFactory[*Document]{s}
	doc.rowFactory = rowFactory[*Document]{s}
	doc.cellFactory = cellFactory[*Document]{s}
	doc.columnFactory = columnFactory[*Document]{s}
	doc.optionFactory = optionFactory[*Document]{s}
	doc.optgroupFactory = optgroupFactory[*Document]{s}
	doc.figcaptionFactory = figcaptionFactory[*Document]{s}
	doc.summaryFactory = summaryFactory[*Document]{s}
	doc.legendFactory = legendFactory[*Document]{s}
	doc.sourceFactory = sourceFactory[*Document]{s}
	doc.trackFactory = trackFactory[*Document]{s}
	doc.scopes.bind(doc)
	return doc
}

// setCharset wraps the output in an encoder for any charset other than UTF-8.
func (doc *Document) setCharset() {
	if doc.cfg.charset == `utf-8` {
		return
	}
	enc, err := htmlindex.Get(doc.cfg.charset)
	if err != nil {
		doc.err = fmt.Errorf(`html: charset %q: %w`, doc.cfg.charset, err)
		return
	}
	name, err := htmlindex.Name(enc)
	if err == nil {
		doc.cfg.charset = name
	}
	if doc.cfg.charset == `utf-8` {
		return
	}
	tw := transform.NewWriter(doc.out, encoding.HTMLEscapeUnsupported(enc.NewEncoder()))
	doc.out, doc.flush = tw, tw
}

// Doctype writes the configured document type declaration on its own line.  XHTML documents in a charset
// other than UTF-8 are preceded by an XML declaration naming the charset.
func (doc *Document) Doctype() *Document {
	doc.ready(`!DOCTYPE`)
	if doc.cfg.serialization == XHTML && doc.cfg.charset != `utf-8` {
		doc.writeString(`<?xml version="1.0" encoding="`)
		doc.writeString(doc.cfg.charset)
		doc.writeString(`"?>`)
		doc.lineBreak()
	}
	if decl := doc.cfg.doctype.declaration(doc.cfg.serialization); decl != `` {
		doc.writeString(decl)
		doc.lineBreak()
	}
	return doc
}

// Serialization returns the syntax the Document writes.
func (doc *Document) Serialization() Serialization { return doc.cfg.serialization }

// Charset returns the canonical name of the output charset.
func (doc *Document) Charset() string { return doc.cfg.charset }

// ContentType returns the value for a Content-Type header describing the output.
func (doc *Document) ContentType() string {
	return doc.cfg.serialization.ContentType() + `; charset=` + doc.cfg.charset
}

// Depth returns the number of element bodies currently open.
func (doc *Document) Depth() int { return doc.depth }

// Err returns the first error encountered while writing, if any.  Once a write fails, every later write is
// dropped.
func (doc *Document) Err() error { return doc.err }

// Close flushes any buffered output and releases the Document; writing to a released Document panics with
// ErrReleased.  Close does not close the underlying writer.  It returns the first write error, or ErrUnclosed
// if an element was left open.
func (doc *Document) Close() error {
	if doc.released {
		return doc.err
	}
	doc.released = true
	if doc.flush != nil {
		if err := doc.flush.Close(); err != nil && doc.err == nil {
			doc.err = fmt.Errorf(`html: flush failed: %w`, err)
		}
	}
	if doc.err == nil && doc.pending != 0 {
		doc.err = &StateError{Err: ErrUnclosed, Tag: doc.pendingName}
	} else if doc.err == nil && doc.depth != 0 {
		doc.err = &StateError{Err: ErrUnclosed, Tag: fmt.Sprintf(`depth %d`, doc.depth)}
	}
	return doc.err
}

var (
	// ErrReleased reports use of a Document after Close.
	ErrReleased = errors.New(`document has been released`)

	// ErrTagPending reports an attempt to write content while another element's start tag is still open,
	// which means that element was never given a body or closed.
	ErrTagPending = errors.New(`start tag is still open`)

	// ErrAttributesClosed reports an attribute written after its element's start tag was completed.
	ErrAttributesClosed = errors.New(`attributes are closed`)

	// ErrNotOpen reports closing an element, or giving it a body, more than once.
	ErrNotOpen = errors.New(`element is not open`)

	// ErrUnclosed is reported by Close when an element was left open.
	ErrUnclosed = errors.New(`element left open`)

	// ErrCustomName reports a custom element name that is not a valid custom element name, such as "div" or
	// "Widget".
	ErrCustomName = errors.New(`not a valid custom element name`)
)

// StateError is the panic value of a call that violates the open, attributes, body, close order of an
// element.  These faults are programming errors, like indexing past the end of a slice.
type StateError struct {
	Err error  // one of the Err variables above
	Tag string // the element that was being written
}

func (e *StateError) Error() string { return fmt.Sprintf(`html: <%s>: %v`, e.Tag, e.Err) }
func (e *StateError) Unwrap() error { return e.Err }

func (doc *Document) fault(err error, tag string) {
	panic(&StateError{Err: err, Tag: tag})
}

// ready checks that nothing is pending before new content is written at the current position.
func (doc *Document) ready(tag string) {
	if doc.released {
		doc.fault(ErrReleased, tag)
	}
	if doc.pending != 0 {
		doc.fault(ErrTagPending, doc.pendingName)
	}
}

// expect checks that the start tag with the given serial is the one still open; err describes the fault if
// it is not.
func (doc *Document) expect(id uint64, tag string, err error) {
	switch {
	case doc.released:
		doc.fault(ErrReleased, tag)
	case doc.pending == id:
	case doc.pending != 0 && doc.pending > id:
		doc.fault(ErrTagPending, doc.pendingName)
	default:
		doc.fault(err, tag)
	}
}

func (doc *Document) write(p []byte) {
	if doc.err != nil || len(p) == 0 {
		return
	}
	if doc.leading(p[0]); doc.err != nil {
		return
	}
	if _, err := doc.out.Write(p); err != nil {
		doc.err = fmt.Errorf(`html: write failed: %w`, err)
		return
	}
	doc.bol = p[len(p)-1] == '\n'
}

func (doc *Document) writeString(s string) {
	if doc.err != nil || len(s) == 0 {
		return
	}
	if doc.leading(s[0]); doc.err != nil {
		return
	}
	if _, err := io.WriteString(doc.out, s); err != nil {
		doc.err = fmt.Errorf(`html: write failed: %w`, err)
		return
	}
	doc.bol = s[len(s)-1] == '\n'
}

// leading doubles a line break that starts the content of <pre> or <textarea>, because HTML parsers
// drop the first one.
func (doc *Document) leading(first byte) {
	if !doc.lead {
		return
	}
	doc.lead = false
	if first == '\n' || first == '\r' {
		if _, err := io.WriteString(doc.out, "\n"); err != nil {
			doc.err = fmt.Errorf(`html: write failed: %w`, err)
		}
	}
}

func (doc *Document) writeEncoded(ctx encode.Context, s string) {
	doc.scratch = encode.Append(doc.scratch[:0], ctx, s)
	doc.write(doc.scratch)
}

// pretty reports whether whitespace may be added at the current position.
func (doc *Document) pretty() bool { return !doc.cfg.compact && doc.pre == 0 }

// newline moves to the start of a line, unless already there.
func (doc *Document) newline() {
	if doc.pretty() && !doc.bol {
		doc.writeString("\n")
	}
}

// lineBreak ends the current line unconditionally.
func (doc *Document) lineBreak() {
	if doc.pretty() {
		doc.writeString("\n")
	}
}

// indent writes one indentation unit per level of depth, if at the start of a line.
func (doc *Document) indent() {
	if !doc.pretty() || !doc.bol {
		return
	}
	for i := 0; i < doc.depth; i++ {
		doc.writeString(doc.cfg.indent)
	}
}

// open writes "<name" and makes its serial the pending start tag.
func (doc *Document) open(name string, ws layout) uint64 {
	doc.ready(name)
	if ws == block || ws == preformatted {
		doc.newline()
	}
	doc.indent()
	doc.serial++
	doc.pending, doc.pendingName = doc.serial, name
	doc.writeString(`<`)
	doc.writeString(name)
	return doc.serial
}

// attr writes ` name="value"` with the value encoded for ctx.
func (doc *Document) attr(id uint64, tag, name, value string, ctx encode.Context) {
	doc.expect(id, tag, ErrAttributesClosed)
	b := append(doc.scratch[:0], ' ')
	b = append(b, name...)
	b = append(b, '=', '"')
	b = encode.Append(b, ctx, value)
	b = append(b, '"')
	doc.scratch = b
	doc.write(b)
}

// flag writes a boolean attribute.
func (doc *Document) flag(id uint64, tag, name string) {
	doc.expect(id, tag, ErrAttributesClosed)
	doc.writeString(` `)
	doc.writeString(name)
	if doc.cfg.serialization == XHTML {
		doc.writeString(`="`)
		doc.writeString(name)
		doc.writeString(`"`)
	}
}

// attrWith writes an attribute whose value is produced by fn writing to an attribute encoder.
func (doc *Document) attrWith(id uint64, tag, name string, fn func(w io.Writer)) {
	doc.expect(id, tag, ErrAttributesClosed)
	doc.writeString(` `)
	doc.writeString(name)
	doc.writeString(`="`)
	fn(encode.Writer(sink{doc}, encode.Attribute))
	doc.writeString(`"`)
}

// seal completes a start tag with ">".
func (doc *Document) seal(id uint64, tag string) {
	doc.expect(id, tag, ErrNotOpen)
	doc.pending, doc.pendingName = 0, ``
	doc.writeString(`>`)
	switch tag {
	case `pre`, `textarea`:
		doc.lead = true
	}
}

// sealVoid completes the start tag of a void element, which has no end tag.
func (doc *Document) sealVoid(id uint64, tag string, ws layout) {
	doc.expect(id, tag, ErrNotOpen)
	doc.pending, doc.pendingName = 0, ``
	if doc.cfg.serialization == XHTML {
		doc.writeString(` />`)
	} else {
		doc.writeString(`>`)
	}
	doc.after(ws)
}

// descend enters the body of an element given as a callback.
func (doc *Document) descend(ws layout) {
	switch ws {
	case block:
		doc.newline()
	case preformatted:
		doc.pre++
	}
	doc.depth++
}

// ascend leaves the body of an element and writes its end tag.
func (doc *Document) ascend(tag string, ws layout) {
	if doc.pending != 0 {
		doc.fault(ErrTagPending, doc.pendingName)
	}
	doc.depth--
	if ws == block {
		doc.newline()
	}
	doc.indent()
	if ws == preformatted {
		doc.pre--
	}
	doc.end(tag, ws)
}

// end writes an end tag and the whitespace that follows it.
func (doc *Document) end(tag string, ws layout) {
	if doc.released {
		doc.fault(ErrReleased, tag)
	}
	doc.writeString(`</`)
	doc.writeString(tag)
	doc.writeString(`>`)
	doc.after(ws)
}

func (doc *Document) after(ws layout) {
	if ws != inline {
		doc.lineBreak()
	}
}

// text writes character data at the current position.
func (doc *Document) text(ctx encode.Context, s string) {
	doc.ready(`#text`)
	doc.indent()
	doc.writeEncoded(ctx, s)
}

// rawString writes markup at the current position without encoding it.
func (doc *Document) rawString(markup string) {
	doc.ready(`#raw`)
	doc.indent()
	doc.writeString(markup)
}

// include writes the markup of prerendered content.  Fragments are rendered in place, so they are indented
// like the rest of the document.
func (doc *Document) include(content Content) {
	doc.ready(`#include`)
	if fragment, ok := content.(Fragment); ok {
		if fragment != nil {
			fragment(doc)
		}
		return
	}
	doc.indent()
	doc.scratch = content.AppendHTML(doc.scratch[:0])
	doc.write(doc.scratch)
}

func (doc *Document) comment(text string) {
	doc.ready(`#comment`)
	doc.indent()
	doc.writeString(`<!--`)
	doc.writeEncoded(encode.Comment, text)
	doc.writeString(`-->`)
}

// sink passes writes through to a Document, used to hand encoders to callbacks.
type sink struct{ doc *Document }

func (s sink) Write(p []byte) (int, error) {
	if s.doc.released {
		s.doc.fault(ErrReleased, `#writer`)
	}
	s.doc.write(p)
	if s.doc.err != nil {
		return 0, s.doc.err
	}
	return len(p), nil
}
