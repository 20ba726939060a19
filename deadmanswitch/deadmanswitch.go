// Package deadmanswitch provides a component that can be used to run JavaScript expressions when a Server Sent Events
// (SSE) connection to a service is lost.  This is useful for reloading HTML views when the server restarts.
package deadmanswitch

import (
	"encoding/json"
	"net/http"
	"strings"

	html "github.com/swdunlop/fluent-html-go"
)

// New returns a new Dead Man's Switch which can handle inbound Server Sent Events (SSE) connections and renders
// a script element that detects when the SSE connection is lost and when it returns.  This is useful for reloading
// content when the server restarts.
func New(options ...Option) Interface {
	cfg := &config{path: "/dead-man-switch", hooks: make(map[string][]string, len(hooks))}
	for _, option := range options {
		option(cfg)
	}
	cfg.assembleScript()
	return cfg
}

// ReloadOnReconnect reloads the page with window.location.reload when the switch reconnects, which needs no
// libraries.  With htmx or Unpoly, a partial refresh through OnReconnect is usually kinder to the user.
func ReloadOnReconnect() Option {
	return OnReconnect(`window.location.reload()`)
}

// OnConnect adds expressions that run when the first connection opens.  Each expression becomes the body of its
// own function, so statements in one cannot leak into another.
func OnConnect(expr ...string) Option { return on(`connect`, expr...) }

// OnDisconnect adds expressions that run when an open connection is lost.
func OnDisconnect(expr ...string) Option { return on(`disconnect`, expr...) }

// OnReconnect adds expressions that run when a lost connection opens again, such as after a server restart.
func OnReconnect(expr ...string) Option { return on(`reconnect`, expr...) }

func on(hook string, expr ...string) Option {
	return func(cfg *config) { cfg.hooks[hook] = append(cfg.hooks[hook], expr...) }
}

// Path specifies the path to the Dead Man's Switch handler.  By default, this is "/dead-man-switch".
func Path(path string) Option { return func(cfg *config) { cfg.path = path } }

// An Option configures a switch made by New.
type Option func(*config)

// Interface is a configured switch: a handler to mount at Path, and the script element that connects to it.
type Interface interface {
	html.Content
	http.Handler

	// Path returns the path where the handler should be mounted.
	Path() string

	// Render writes the script element for the switch into a document.
	Render(doc *html.Document)
}

type config struct {
	path   string
	hooks  map[string][]string
	script string
}

// Path implements Interface by returning the expected path for SSE connections.
func (cfg *config) Path() string { return cfg.path }

// Render implements Interface; the script is encoded for a script element, so it cannot end the element early.
func (cfg *config) Render(doc *html.Document) {
	doc.Script().Text(cfg.script)
}

// AppendHTML implements html.Content by rendering the script element without whitespace.
func (cfg *config) AppendHTML(p []byte) []byte { return html.Fragment(cfg.Render).AppendHTML(p) }

// ServeHTTP implements http.Handler by accepting inbound SSE connections and holding them until the provided context
// is cancelled or the connection is lost.
func (cfg *config) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `streaming unsupported`, http.StatusInternalServerError)
		return
	}
	h := w.Header()
	h.Set(`Content-Type`, `text/event-stream`)
	h.Set(`Cache-Control`, `no-cache`)
	h.Set(`Connection`, `keep-alive`)
	_, _ = w.Write([]byte("event: connected\ndata: \n\n"))
	flusher.Flush()
	<-r.Context().Done()
}

// hooks are the events a switch runs expressions for, in the order they appear in the script.
var hooks = []string{`connect`, `disconnect`, `reconnect`}

func (cfg *config) assembleScript() {
	path, err := json.Marshal(cfg.path)
	if err != nil {
		panic(err)
	}
	var buf strings.Builder
	buf.WriteString("(function(){\n\tif (window.dms) return;\n\tvar hooks = {")
	for i, hook := range hooks {
		if i > 0 {
			buf.WriteString(`, `)
		}
		buf.WriteString(hook)
		buf.WriteString(`: [`)
		for j, expr := range cfg.hooks[hook] {
			if j > 0 {
				buf.WriteString(`, `)
			}
			buf.WriteString(`function(){`)
			buf.WriteString(expr)
			buf.WriteString(`}`)
		}
		buf.WriteString(`]`)
	}
	buf.WriteString("};\n\tvar sse = new EventSource(")
	buf.Write(path)
	buf.WriteString(");\n")
	buf.WriteString(watchScript)
	buf.WriteString(`})()`)
	cfg.script = buf.String()
}

// watchScript tracks the connection state and runs the hooks when it changes.  state is null until the first
// connection, so the first open runs connect and later ones run reconnect.
const watchScript = `	var state = null;
	window.dms = {on: hooks, sse: sse};
	var run = function(name) { hooks[name].forEach(function(f) { f(); }); };
	sse.addEventListener('open', function() {
		if (state === true) return;
		var name = state === null ? 'connect' : 'reconnect';
		state = true;
		run(name);
	});
	sse.addEventListener('error', function() {
		if (state !== true) return;
		state = false;
		run('disconnect');
	});
`
