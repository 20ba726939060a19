package html

import (
	"fmt"
	"strings"

	"github.com/swdunlop/fluent-html-go/encode"
)

// layout describes the whitespace a pretty printed Document adds around an element.
type layout uint8

const (
	inline       layout = iota // indented only when it starts a line
	block                      // starts and ends its own line, children indented
	breaking                   // inline, followed by a line break
	preformatted               // a block whose content is written without any added whitespace
)

// scope is a position in a document: the document and the content model value that owns the position.
type scope[C any] struct {
	doc  *Document
	self C
}

func at[C any](doc *Document, self C) scope[C] { return scope[C]{doc, self} }

// element is the state shared by every element shape: the position it was opened at and the serial of its
// start tag.
type element[P any] struct {
	s    scope[P]
	id   uint64
	name string
	ws   layout
}

func openElement[P any](s scope[P], name string, ws layout) element[P] {
	return element[P]{s: s, id: s.doc.open(name, ws), name: name, ws: ws}
}

func (e element[P]) empty() P {
	e.s.doc.seal(e.id, e.name)
	e.s.doc.end(e.name, e.ws)
	return e.s.self
}

func (e element[P]) encoded(ctx encode.Context, str string) P {
	e.s.doc.seal(e.id, e.name)
	e.s.doc.writeEncoded(ctx, str)
	e.s.doc.end(e.name, e.ws)
	return e.s.self
}

func (e element[P]) unsafe(raw string) P {
	e.s.doc.seal(e.id, e.name)
	e.s.doc.writeString(raw)
	e.s.doc.end(e.name, e.ws)
	return e.s.self
}

func (e element[P]) body(fn func()) P {
	e.s.doc.seal(e.id, e.name)
	e.s.doc.descend(e.ws)
	fn()
	e.s.doc.ascend(e.name, e.ws)
	return e.s.self
}

// begin enters the body and returns the function that leaves it.
func (e element[P]) begin() func() P {
	e.s.doc.seal(e.id, e.name)
	e.s.doc.descend(e.ws)
	done := false
	return func() P {
		if done {
			e.s.doc.fault(ErrNotOpen, e.name)
		}
		done = true
		e.s.doc.ascend(e.name, e.ws)
		return e.s.self
	}
}

// void is the shape of elements that never have content, like <br> and <img>.
type void[P any] struct{ element[P] }

// Close completes the element and returns its parent.
func (e void[P]) Close() P {
	e.s.doc.sealVoid(e.id, e.name, e.ws)
	return e.s.self
}

// normal is the shape of elements whose content model B differs from their parent's.  content returns the
// document's instance of B.
type normal[P, B any] struct {
	element[P]
	content func(*Document) B
}

// Close completes the element with no content and returns its parent.
func (e normal[P, B]) Close() P { return e.empty() }

// Text completes the element with the text as its content and returns its parent.
func (e normal[P, B]) Text(text string) P { return e.encoded(encode.Text, text) }

// Textf formats its arguments with fmt.Sprintf and uses the result as Text.
func (e normal[P, B]) Textf(format string, args ...any) P {
	return e.encoded(encode.Text, fmt.Sprintf(format, args...))
}

// Unsafe completes the element with content that is written without any encoding.  The markup must be
// correct for the element's content model, since it is not checked.
func (e normal[P, B]) Unsafe(markup string) P { return e.unsafe(markup) }

// With completes the element with the content written by fn, then returns its parent.  A nil fn is the same
// as Close.
func (e normal[P, B]) With(fn func(B)) P {
	if fn == nil {
		return e.empty()
	}
	content := e.content(e.s.doc)
	return e.body(func() { fn(content) })
}

// Body completes the start tag and returns the element's content model, with a function that writes the end
// tag and returns the parent.  The function must be called exactly once, after the content is written.
func (e normal[P, B]) Body() (B, func() P) {
	end := e.begin()
	return e.content(e.s.doc), end
}

// transparent is the shape of elements whose content model is the same as their parent's, like <a> and <ins>.
type transparent[P any] struct{ element[P] }

// Close completes the element with no content and returns its parent.
func (e transparent[P]) Close() P { return e.empty() }

// Text completes the element with the text as its content and returns its parent.
func (e transparent[P]) Text(text string) P { return e.encoded(encode.Text, text) }

// Textf formats its arguments with fmt.Sprintf and uses the result as Text.
func (e transparent[P]) Textf(format string, args ...any) P {
	return e.encoded(encode.Text, fmt.Sprintf(format, args...))
}

// Unsafe completes the element with content that is written without any encoding.
func (e transparent[P]) Unsafe(markup string) P { return e.unsafe(markup) }

// With completes the element with the content written by fn in the parent's content model, then returns
// the parent.  A nil fn is the same as Close.
func (e transparent[P]) With(fn func(P)) P {
	if fn == nil {
		return e.empty()
	}
	return e.body(func() { fn(e.s.self) })
}

// Body completes the start tag and returns the parent's content model, with a function that writes the end tag
// and returns the parent.
func (e transparent[P]) Body() (P, func() P) {
	end := e.begin()
	return e.s.self, end
}

// textual is the shape of elements whose only content is text, like <title> and <script>.  ctx selects how the
// text is encoded.
type textual[P any] struct {
	element[P]
	ctx encode.Context
}

// Close completes the element with no content and returns its parent.
func (e textual[P]) Close() P { return e.empty() }

// Text completes the element with the text as its content and returns its parent.
func (e textual[P]) Text(text string) P { return e.encoded(e.ctx, text) }

// Textf formats its arguments with fmt.Sprintf and uses the result as Text.
func (e textual[P]) Textf(format string, args ...any) P {
	return e.encoded(e.ctx, fmt.Sprintf(format, args...))
}

// Unsafe completes the element with content that is written without any encoding.
func (e textual[P]) Unsafe(content string) P { return e.unsafe(content) }

// reservedCustomNames are hyphenated names that SVG and MathML already use.
var reservedCustomNames = map[string]bool{
	`annotation-xml`: true, `color-profile`: true, `font-face`: true, `font-face-src`: true,
	`font-face-uri`: true, `font-face-format`: true, `font-face-name`: true, `missing-glyph`: true,
}

// customNameRanges are the characters beyond ASCII that a custom element name may contain.
var customNameRanges = [...][2]rune{
	{0xB7, 0xB7}, {0xC0, 0xD6}, {0xD8, 0xF6}, {0xF8, 0x37D}, {0x37F, 0x1FFF}, {0x200C, 0x200D},
	{0x203F, 0x2040}, {0x2070, 0x218F}, {0x2C00, 0x2FEF}, {0x3001, 0xD7FF}, {0xF900, 0xFDCF},
	{0xFDF0, 0xFFFC}, {0x10000, 0xEFFFF},
}

// isCustomName reports whether name can be used for an autonomous custom element: a lowercase ASCII letter,
// then lowercase letters, digits, "-", "." or "_" with at least one hyphen.
func isCustomName(name string) bool {
	if name == `` || name[0] < 'a' || name[0] > 'z' || !strings.Contains(name, `-`) {
		return false
	}
next:
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.' || r == '_' {
			continue
		}
		for _, rg := range customNameRanges {
			if r >= rg[0] && r <= rg[1] {
				continue next
			}
		}
		return false
	}
	return !reservedCustomNames[name]
}
