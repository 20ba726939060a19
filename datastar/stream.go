package datastar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	html "github.com/swdunlop/fluent-html-go"
)

// RequestStream starts a Server Sent Events response if the client accepts text/event-stream.  The response must
// support flushing, directly or through an Unwrap method as chi's wrapped writers do; events are useless if they
// sit in a buffer.
//
// Once a stream is returned, the response belongs to it: write only through Emit.
func RequestStream(w http.ResponseWriter, r *http.Request) (*Stream, error) {
	if !accepts(r, `text/event-stream`) {
		return nil, statusError(http.StatusNotAcceptable, errors.New(`client does not accept SSE`))
	}
	h := w.Header()
	h.Set(`Content-Type`, `text/event-stream`)
	h.Set(`Cache-Control`, `no-cache`)
	h.Set(`Connection`, `keep-alive`)
	w.WriteHeader(http.StatusOK)
	rc := http.NewResponseController(w)
	if err := rc.Flush(); err != nil {
		return nil, fmt.Errorf(`response writer cannot be flushed: %w`, err)
	}
	return &Stream{w: w, rc: rc, buf: make([]byte, 0, 16384)}, nil
}

// A Stream sends events to a Datastar client.  It is not safe for concurrent use.
type Stream struct {
	w   io.Writer
	rc  *http.ResponseController
	buf []byte
}

// Emit writes the events and flushes them to the client in one write.  It fails once the client has gone away.
func (s *Stream) Emit(events ...Event) error {
	buf := s.buf[:0]
	for _, event := range events {
		buf = event.appendEvent(buf)
	}
	s.buf = buf[:0]
	if _, err := s.w.Write(buf); err != nil {
		return fmt.Errorf(`could not emit events: %w`, err)
	}
	if err := s.rc.Flush(); err != nil {
		return fmt.Errorf(`could not flush events: %w`, err)
	}
	return nil
}

// An Event is something a Stream can send; the functions in this package make them.
//
// See https://data-star.dev/reference/sse_events for the events Datastar understands.
type Event interface {
	appendEvent(buf []byte) []byte
}

// Batch renders events once, so the result can be emitted many times, for example to every subscriber of a
// broadcast, without rendering them again.
func Batch(events ...Event) Event {
	var buf []byte
	for _, event := range events {
		buf = event.appendEvent(buf)
	}
	return batch(buf)
}

type batch []byte

func (evt batch) appendEvent(buf []byte) []byte { return append(buf, evt...) }

// Elements makes an event that patches elements in the page.  The content is rendered each time the event is
// emitted; a Fragment renders without indentation.
//
// See https://data-star.dev/reference/sse_events#datastar-patch-elements
func Elements(content html.Content, options ...ElementsOption) Event {
	evt := &elements{content: content}
	for _, option := range options {
		option(evt)
	}
	return evt
}

// Remove makes an event that removes the elements matching selector.
func Remove(selector string) Event {
	return Elements(nil, Selector(selector), Mode(ModeRemove))
}

// ExecuteScript makes an event that appends a script to the body.  The script removes its own element after it
// runs.
func ExecuteScript(script string) Event {
	return Elements(html.Fragment(func(doc *html.Document) {
		doc.Script().Data(`effect`, `el.remove()`).Text(script)
	}), Selector(`body`), Mode(ModeAppend))
}

// Modes for patching elements; ModeOuter is what Datastar does without one.
const (
	ModeOuter   = `outer`
	ModeInner   = `inner`
	ModeReplace = `replace`
	ModePrepend = `prepend`
	ModeAppend  = `append`
	ModeBefore  = `before`
	ModeAfter   = `after`
	ModeRemove  = `remove`
)

// Mode sets how the elements are patched.  It panics if mode contains a line break.
func Mode(mode string) ElementsOption {
	mustBeOneLine(`mode`, mode)
	return func(evt *elements) { evt.mode = mode }
}

// Selector sets which elements are patched, instead of the elements with the IDs of the new ones.  It panics if
// selector contains a line break.
func Selector(selector string) ElementsOption {
	mustBeOneLine(`selector`, selector)
	return func(evt *elements) { evt.selector = selector }
}

func mustBeOneLine(field, value string) {
	if strings.ContainsAny(value, "\r\n") {
		panic(fmt.Errorf(`datastar: %s %q contains a line break`, field, value))
	}
}

// An ElementsOption changes how Elements patches the page.  The last of each kind wins.
type ElementsOption func(*elements)

type elements struct {
	content  html.Content
	mode     string
	selector string
}

func (evt *elements) appendEvent(buf []byte) []byte {
	ev := sse(buf).event(`datastar-patch-elements`)
	if evt.mode != `` {
		ev = ev.data(`mode`, evt.mode)
	}
	if evt.selector != `` {
		ev = ev.data(`selector`, evt.selector)
	}
	if evt.content != nil {
		ev = ev.lines(`elements`, evt.content.AppendHTML(nil))
	}
	return ev.end()
}

// Signal makes an event that merges v into the signals of the page.
//
// See https://data-star.dev/reference/sse_events#datastar-patch-signals
func Signal(v any) Event { return signal{data: v} }

// SignalIfMissing is like Signal, but only sets the signals the page does not have yet.
func SignalIfMissing(v any) Event { return signal{onlyIfMissing: true, data: v} }

type signal struct {
	onlyIfMissing bool
	data          any
}

func (evt signal) appendEvent(buf []byte) []byte {
	js, err := json.Marshal(evt.data)
	if err != nil {
		panic(err)
	}
	ev := sse(buf).event(`datastar-patch-signals`)
	if evt.onlyIfMissing {
		ev = ev.data(`onlyIfMissing`, `true`)
	}
	return ev.data(`signals`, string(js)).end()
}

// sse appends the fields of one event.  Names and values given to event and data must not contain line breaks;
// lines splits its value so that it cannot.  The event stream ends a line at CR, LF or CRLF.
type sse []byte

func (b sse) event(name string) sse {
	b = append(b, `event: `...)
	b = append(b, name...)
	return append(b, '\n')
}

func (b sse) data(name, value string) sse {
	b = append(b, `data: `...)
	b = append(b, name...)
	b = append(b, ' ')
	b = append(b, value...)
	return append(b, '\n')
}

// lines writes one data field per line of value; Datastar joins them with newlines again.
func (b sse) lines(name string, value []byte) sse {
	for len(value) > 0 {
		line, rest := value, value[len(value):]
		if i := bytes.IndexAny(value, "\r\n"); i >= 0 {
			line, rest = value[:i], value[i+1:]
			if value[i] == '\r' && len(rest) > 0 && rest[0] == '\n' {
				rest = rest[1:]
			}
		}
		b = b.data(name, string(line))
		value = rest
	}
	return b
}

func (b sse) end() []byte { return append(b, '\n') }
