package html

import (
	"strings"
)

// An Option affects how a Document serializes its content.
type Option func(*config)

type config struct {
	serialization Serialization
	doctype       Doctype
	indent        string
	compact       bool
	charset       string
}

func defaultConfig() config {
	return config{
		serialization: HTML,
		doctype:       DoctypeHTML5,
		indent:        `  `,
		charset:       `utf-8`,
	}
}

// WithSerialization selects HTML or XHTML output.  The default is HTML.
func WithSerialization(s Serialization) Option {
	return func(cfg *config) { cfg.serialization = s }
}

// WithDoctype selects the doctype written by Document.Doctype.  The default is DoctypeHTML5.
func WithDoctype(d Doctype) Option {
	return func(cfg *config) { cfg.doctype = d }
}

// WithIndent sets the string written once per level of depth at the start of an indented line.  The default
// is two spaces.  An empty unit still breaks lines around block elements, use Compact to suppress all
// whitespace.
func WithIndent(unit string) Option {
	return func(cfg *config) {
		cfg.indent = unit
		cfg.compact = false
	}
}

// Compact suppresses all whitespace that the document would otherwise add around elements.
func Compact() Option {
	return func(cfg *config) { cfg.compact = true }
}

// WithCharset selects the character encoding of the output, using the names in the WHATWG Encoding
// Standard, such as "utf-8", "iso-8859-1" or "shift_jis".  Characters that cannot be represented are written
// as numeric character references.  The default is "utf-8".
func WithCharset(name string) Option {
	return func(cfg *config) { cfg.charset = strings.ToLower(strings.TrimSpace(name)) }
}

// Serialization selects between HTML and XHTML syntax.
type Serialization uint8

const (
	// HTML writes void elements as <br> and boolean attributes as a bare name.
	HTML Serialization = iota

	// XHTML writes void elements as <br /> and boolean attributes as name="name".
	XHTML
)

func (s Serialization) String() string {
	if s == XHTML {
		return `xhtml`
	}
	return `html`
}

// ContentType returns the MIME type used to serve documents in this serialization.
func (s Serialization) ContentType() string {
	if s == XHTML {
		return `application/xhtml+xml`
	}
	return `text/html`
}

// Doctype selects the document type declaration written by Document.Doctype.
type Doctype uint8

const (
	// DoctypeHTML5 is the <!DOCTYPE html> declaration, and the default.
	DoctypeHTML5 Doctype = iota

	// DoctypeStrict is HTML 4.01 Strict or XHTML 1.0 Strict, depending on the serialization.
	DoctypeStrict

	// DoctypeTransitional is HTML 4.01 Transitional or XHTML 1.0 Transitional.
	DoctypeTransitional

	// DoctypeFrameset is HTML 4.01 Frameset or XHTML 1.0 Frameset.
	DoctypeFrameset

	// DoctypeNone writes no doctype at all.
	DoctypeNone
)

// declaration returns the doctype line for a serialization, without a trailing newline.
func (d Doctype) declaration(s Serialization) string {
	xhtml := s == XHTML
	switch d {
	case DoctypeHTML5:
		return `<!DOCTYPE html>`
	case DoctypeStrict:
		if xhtml {
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`
		}
		return `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`
	case DoctypeTransitional:
		if xhtml {
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`
		}
		return `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`
	case DoctypeFrameset:
		if xhtml {
			return `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`
		}
		return `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`
	default:
		return ``
	}
}
