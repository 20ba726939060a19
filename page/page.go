// Package page serves Documents over HTTP.  A page function writes the document for a request; the handler picks
// the serialization the client prefers, sets the content type, and logs any render failure through hog.
package page

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/swdunlop/fluent-html-go/hog"
)

// Handler returns a http.Handler that renders fn into the response with a 200.  If the render fails before
// anything was written, the handler answers with a 500 instead.
func Handler(fn func(doc *html.Document, r *http.Request), options ...Option) http.Handler {
	cfg := config{}
	for _, option := range options {
		option(&cfg)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg.serve(w, r, fn)
	})
}

// Render renders fn into the response, as the handler returned by Handler does.
func Render(w http.ResponseWriter, r *http.Request, fn func(doc *html.Document, r *http.Request), options ...Option) {
	cfg := config{}
	for _, option := range options {
		option(&cfg)
	}
	cfg.serve(w, r, fn)
}

// Document passes options to every Document the handler creates.
func Document(options ...html.Option) Option {
	return func(cfg *config) { cfg.options = append(cfg.options, options...) }
}

// Negotiated lets the client pick XHTML over HTML with its Accept header; see Negotiate.
func Negotiated() Option {
	return func(cfg *config) { cfg.negotiate = true }
}

// Buffered renders the whole document before sending it, so a failed render is always answered with a 500 and
// a successful one carries a Content-Length.
func Buffered() Option {
	return func(cfg *config) { cfg.buffered = true }
}

// An Option affects how pages are served.
type Option func(*config)

type config struct {
	options   []html.Option
	negotiate bool
	buffered  bool
}

func (cfg *config) serve(w http.ResponseWriter, r *http.Request, fn func(doc *html.Document, r *http.Request)) {
	options := cfg.options
	if cfg.negotiate {
		options = append(options[:len(options):len(options)], html.WithSerialization(Negotiate(r)))
	}
	if cfg.buffered {
		cfg.serveBuffered(w, r, fn, options)
		return
	}

	ww, ok := w.(middleware.WrapResponseWriter)
	if !ok {
		ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	}
	doc := html.New(ww, options...)
	ww.Header().Set(`Content-Type`, doc.ContentType())
	fn(doc, r)
	if err := doc.Close(); err != nil {
		fail(ww, r, err, ww.BytesWritten() == 0 && ww.Status() == 0)
	}
}

func (cfg *config) serveBuffered(
	w http.ResponseWriter, r *http.Request, fn func(doc *html.Document, r *http.Request), options []html.Option,
) {
	var buf bytes.Buffer
	doc := html.New(&buf, options...)
	fn(doc, r)
	if err := doc.Close(); err != nil {
		fail(w, r, err, true)
		return
	}
	h := w.Header()
	h.Set(`Content-Type`, doc.ContentType())
	h.Set(`Content-Length`, strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		hog.Fault(hog.From(r.Context()).Warn(), err).Msg(`could not send page`)
	}
}

func fail(w http.ResponseWriter, r *http.Request, err error, unsent bool) {
	hog.Fault(hog.From(r.Context()).Error(), err).Msg(`could not render page`)
	if unsent {
		w.Header().Del(`Content-Length`)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Negotiate returns XHTML if the Accept header of the request prefers application/xhtml+xml over text/html, and
// HTML otherwise.  Wildcards count toward both, so they never tip the balance.
func Negotiate(r *http.Request) html.Serialization {
	var xhtml, plain float64
	for _, header := range r.Header.Values(`Accept`) {
		for _, accept := range strings.Split(header, `,`) {
			mediaType, q := parseAccept(accept)
			switch mediaType {
			case `application/xhtml+xml`:
				xhtml = max(xhtml, q)
			case `text/html`:
				plain = max(plain, q)
			}
		}
	}
	if xhtml > plain {
		return html.XHTML
	}
	return html.HTML
}

// parseAccept returns the media type and quality of one entry of an Accept header.
func parseAccept(accept string) (string, float64) {
	params := strings.Split(accept, `;`)
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	q := 1.0
	for _, param := range params[1:] {
		name, value, ok := strings.Cut(strings.TrimSpace(param), `=`)
		if !ok || strings.TrimSpace(name) != `q` {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && v >= 0 && v <= 1 {
			q = v
		}
	}
	return mediaType, q
}
