// Package tag parses CSS selector shorthand, such as "a.button#save[href=/save]", into an element name and its
// attributes, and provides a system of functional options that adjust them programmatically.
package tag

import (
	"errors"
	"fmt"
	"strings"

	html "github.com/swdunlop/fluent-html-go"
)

// A Spec is an element name with attributes, as parsed from a selector.
type Spec struct {
	Name  string
	Attrs []html.Attr
}

// Parse parses a selector made of an optional element name followed by any number of "#id", ".class" and
// "[name=value]" parts.  The name defaults to "div".  The last id wins, classes accumulate into a single class
// attribute, and a bracketed attribute replaces an earlier attribute with the same name.  Values in brackets
// may be quoted with single or double quotes; "[name]" sets an empty value.
func Parse(selector string) (Spec, error) {
	var spec Spec
	i := scanName(selector, 0)
	spec.Name = selector[:i]
	if spec.Name == `` {
		spec.Name = `div`
	}
	for i < len(selector) {
		switch ch := selector[i]; ch {
		case '#', '.':
			j := scanName(selector, i+1)
			if j == i+1 {
				return Spec{}, fmt.Errorf(`%w: empty %q at %d in %q`, ErrSyntax, ch, i, selector)
			}
			if ch == '#' {
				spec.set(`id`, selector[i+1:j])
			} else {
				spec.addClass(selector[i+1 : j])
			}
			i = j
		case '[':
			name, value, j, err := scanAttr(selector, i+1)
			if err != nil {
				return Spec{}, fmt.Errorf(`%w: %v at %d in %q`, ErrSyntax, err, i, selector)
			}
			spec.set(name, value)
			i = j
		default:
			return Spec{}, fmt.Errorf(`%w: unexpected %q at %d in %q`, ErrSyntax, ch, i, selector)
		}
	}
	return spec, nil
}

// ErrSyntax is wrapped by the errors returned by Parse.
var ErrSyntax = errors.New(`invalid selector`)

// Must is like Parse, but panics if the selector is invalid.  It is intended for package level variables.
func Must(selector string, options ...Option) Spec {
	spec, err := Parse(selector)
	if err != nil {
		panic(err)
	}
	return spec.With(options...)
}

// With returns a copy of the spec with the options applied.
func (spec Spec) With(options ...Option) Spec {
	spec.Attrs = append([]html.Attr(nil), spec.Attrs...)
	for _, option := range options {
		option(&spec)
	}
	return spec
}

// Get returns the value of an attribute and whether it was set.
func (spec Spec) Get(name string) (string, bool) {
	for _, attr := range spec.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return ``, false
}

// Element opens the custom element described by spec with its attributes, in any content model that permits
// phrasing content.  The element's content model is its parent's.  Element panics with html.ErrCustomName unless
// spec.Name is a valid custom element name, like "x-card"; a standard element is opened with its own factory and
// given spec.Attrs, as in li.Button().Attrs(spec.Attrs...).
func Element[C any](c html.PhrasingContent[C], spec Spec) *html.Transparent[C] {
	return c.Custom(spec.Name).Attrs(spec.Attrs...)
}

// ID sets the id attribute.
func ID(id string) Option {
	return Attr(`id`, id)
}

// Class appends classes to the class attribute.
func Class(classes ...string) Option {
	return func(spec *Spec) {
		for _, class := range classes {
			spec.addClass(class)
		}
	}
}

// Attr sets an attribute, replacing any earlier value.
func Attr(name, value string) Option {
	return func(spec *Spec) { spec.set(name, value) }
}

// Apply applies a series of options as an option.
func Apply(options ...Option) Option {
	return func(spec *Spec) {
		for _, option := range options {
			option(spec)
		}
	}
}

// An Option affects a Spec.
type Option func(*Spec)

func (spec *Spec) set(name, value string) {
	for i := range spec.Attrs {
		if spec.Attrs[i].Name == name {
			spec.Attrs[i].Value = value
			return
		}
	}
	spec.Attrs = append(spec.Attrs, html.Attr{Name: name, Value: value})
}

func (spec *Spec) addClass(class string) {
	if prev, ok := spec.Get(`class`); ok && prev != `` {
		class = prev + ` ` + class
	}
	spec.set(`class`, class)
}

// scanName returns the end of the name that starts at i.
func scanName(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case '#', '.', '[', ']', '=', ' ', '\t', '\n', '"', '\'':
			return i
		}
		i++
	}
	return i
}

// scanAttr scans "name]", "name=value]" or "name='value']" starting after the opening bracket.
func scanAttr(s string, i int) (name, value string, end int, err error) {
	j := scanName(s, i)
	if j == i {
		return ``, ``, 0, errors.New(`missing attribute name`)
	}
	name = s[i:j]
	if j >= len(s) {
		return ``, ``, 0, errors.New(`unterminated [`)
	}
	switch s[j] {
	case ']':
		return name, ``, j + 1, nil
	case '=':
	default:
		return ``, ``, 0, fmt.Errorf(`unexpected %q in attribute`, s[j])
	}
	j++
	if j < len(s) && (s[j] == '"' || s[j] == '\'') {
		q := s[j]
		k := strings.IndexByte(s[j+1:], q)
		if k < 0 {
			return ``, ``, 0, errors.New(`unterminated quote`)
		}
		value, j = s[j+1:j+1+k], j+2+k
		if j >= len(s) || s[j] != ']' {
			return ``, ``, 0, errors.New(`unterminated [`)
		}
		return name, value, j + 1, nil
	}
	k := strings.IndexByte(s[j:], ']')
	if k < 0 {
		return ``, ``, 0, errors.New(`unterminated [`)
	}
	return name, s[j : j+k], j + k + 1, nil
}
