// Package encode escapes strings for the contexts they appear in inside an HTML document.  Each context
// has its own Append function; all of them append to a caller provided buffer so the document writer can
// reuse a single scratch slice.
package encode

import (
	"fmt"
	"io"
	"strings"
)

// A Context identifies where in a document a string will be written.
type Context uint8

const (
	// Text is character data between tags.
	Text Context = iota

	// Attribute is a double quoted attribute value.
	Attribute

	// URL is a double quoted attribute value holding a URL, such as href or src.
	URL

	// Script is the raw text body of a <script> element.
	Script

	// Style is the raw text body of a <style> element.
	Style

	// Comment is the body of an HTML comment.
	Comment
)

func (ctx Context) String() string {
	switch ctx {
	case Text:
		return `text`
	case Attribute:
		return `attribute`
	case URL:
		return `url`
	case Script:
		return `script`
	case Style:
		return `style`
	case Comment:
		return `comment`
	default:
		return fmt.Sprintf(`context(%d)`, uint8(ctx))
	}
}

// Append appends str to buf, escaped for ctx.
func Append(buf []byte, ctx Context, str string) []byte {
	switch ctx {
	case Text:
		return appendText(buf, str)
	case Attribute:
		return appendValue(buf, str)
	case URL:
		return appendURL(buf, str)
	case Script:
		return appendRaw(buf, str, `</script`, `<!--`)
	case Style:
		return appendRaw(buf, str, `</style`)
	case Comment:
		return appendComment(buf, str)
	default:
		panic(fmt.Errorf(`unknown encoding context %v`, ctx))
	}
}

// String returns str escaped for ctx.
func String(ctx Context, str string) string {
	return string(Append(make([]byte, 0, len(str)+16), ctx, str))
}

// Writer returns a writer that escapes everything written to it for ctx before passing it to w.  Script and
// Style look for their end tag within a single write only.
func Writer(w io.Writer, ctx Context) io.Writer {
	return &writer{w: w, ctx: ctx}
}

type writer struct {
	w   io.Writer
	ctx Context
	buf []byte
}

func (wr *writer) Write(p []byte) (int, error) {
	wr.buf = Append(wr.buf[:0], wr.ctx, string(p))
	_, err := wr.w.Write(wr.buf)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// appendText escapes the characters that could be mistaken for the start of a tag or a character reference.
func appendText(buf []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		switch b := str[i]; b {
		case '<':
			buf = append(buf, `&lt;`...)
		case '>':
			buf = append(buf, `&gt;`...)
		case '&':
			buf = append(buf, `&amp;`...)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}

// appendValue escapes an attribute value for use between double quotes.  Single quotes are escaped too so the
// output stays safe if it ends up in a single quoted attribute by way of Static content.
func appendValue(buf []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		switch b := str[i]; b {
		case '<':
			buf = append(buf, `&lt;`...)
		case '>':
			buf = append(buf, `&gt;`...)
		case '&':
			buf = append(buf, `&amp;`...)
		case '"':
			buf = append(buf, `&quot;`...)
		case '\'':
			buf = append(buf, `&#39;`...)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}

// appendURL percent encodes anything that is not valid in a URL, leaving reserved characters and existing
// escapes alone, then escapes the result as an attribute value.
func appendURL(buf []byte, str string) []byte {
	const hex = `0123456789ABCDEF`
	for i := 0; i < len(str); i++ {
		b := str[i]
		switch {
		case b == '%' && i+2 < len(str) && isHex(str[i+1]) && isHex(str[i+2]):
			buf = append(buf, '%')
		case b == '&':
			buf = append(buf, `&amp;`...)
		case b == '\'':
			buf = append(buf, `&#39;`...)
		case isURLByte(b):
			buf = append(buf, b)
		default:
			buf = append(buf, '%', hex[b>>4], hex[b&15])
		}
	}
	return buf
}

func isHex(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// isURLByte reports whether b may appear literally in a URL attribute, per the unreserved and reserved sets
// of RFC 3986.  The quote characters are excluded so they never terminate the attribute.
func isURLByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case '-', '.', '_', '~', // unreserved
		':', '/', '?', '#', '[', ']', '@', // gen-delims
		'!', '$', '(', ')', '*', '+', ',', ';', '=': // sub-delims without & and '
		return true
	}
	return false
}

// appendRaw appends raw text content, inserting a backslash after the '<' of each (case insensitive)
// occurrence of a needle so the content cannot close its element or open a comment.  Both script and style
// treat "<\/" like "</".
func appendRaw(buf []byte, str string, needles ...string) []byte {
	lower := asciiLower(str)
	for len(str) > 0 {
		at, n := -1, 0
		for _, needle := range needles {
			ofs := strings.Index(lower, needle)
			if ofs >= 0 && (at < 0 || ofs < at) {
				at, n = ofs, len(needle)
			}
		}
		if at < 0 {
			return append(buf, str...)
		}
		buf = append(buf, str[:at+1]...)
		buf = append(buf, '\\')
		buf = append(buf, str[at+1:at+n]...)
		str, lower = str[at+n:], lower[at+n:]
	}
	return buf
}

// asciiLower lowers A-Z only, so byte offsets in the result match the input.
func asciiLower(str string) string {
	lower := []byte(str)
	for i, b := range lower {
		if 'A' <= b && b <= 'Z' {
			lower[i] = b + ('a' - 'A')
		}
	}
	return string(lower)
}

// appendComment appends a comment body.  HTML5 provides no way to escape the end of a comment, so this panics
// if the comment could be terminated early or is otherwise not valid comment text: it must not start with ">"
// or "->", contain "<!--", "-->" or "--!>", or end with "<!-".
func appendComment(buf []byte, str string) []byte {
	for _, start := range [...]string{`>`, `->`} {
		if strings.HasPrefix(str, start) {
			panic(fmt.Errorf(`comment starts with %q`, start))
		}
	}
	for _, bad := range [...]string{`<!--`, `-->`, `--!>`} {
		if strings.Contains(str, bad) {
			panic(fmt.Errorf(`comment contains %q`, bad))
		}
	}
	if strings.HasSuffix(str, `<!-`) {
		panic(fmt.Errorf(`comment ends with %q`, `<!-`))
	}
	return append(buf, str...)
}
