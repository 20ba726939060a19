package datastar

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	html "github.com/swdunlop/fluent-html-go"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		query       string
		expected    map[string]any
		status      int
	}{
		{
			name:     "GET with datastar query param",
			method:   "GET",
			query:    `{"user":"test","count":42}`,
			expected: map[string]any{"user": "test", "count": float64(42)},
		},
		{
			name:        "POST with JSON body",
			method:      "POST",
			contentType: "application/json",
			body:        `{"user":"test"}`,
			expected:    map[string]any{"user": "test"},
		},
		{
			name:        "POST with unsupported content type",
			method:      "POST",
			contentType: "text/plain",
			body:        "plain text",
			status:      415,
		},
		{
			name:   "GET with invalid JSON in query param",
			method: "GET",
			query:  `{invalid json}`,
			status: 400,
		},
		{
			name:        "PUT with invalid JSON body",
			method:      "PUT",
			contentType: "application/json",
			body:        `{invalid json}`,
			status:      400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.method == "GET" {
				u := &url.URL{Path: "/test", RawQuery: "datastar=" + url.QueryEscape(tt.query)}
				req = httptest.NewRequest(tt.method, u.String(), nil)
			} else {
				req = httptest.NewRequest(tt.method, "/test", strings.NewReader(tt.body))
				req.Header.Set("Content-Type", tt.contentType)
			}

			var result map[string]any
			err := Decode(&result, req)
			if tt.status != 0 {
				var he httpError
				if !errors.As(err, &he) {
					t.Fatalf("expected an HTTP error, got %v", err)
				}
				if he.HTTPStatus() != tt.status {
					t.Errorf("expected status %d, got %d", tt.status, he.HTTPStatus())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for k, v := range tt.expected {
				if result[k] != v {
					t.Errorf("expected %s=%v, got %v", k, v, result[k])
				}
			}
		})
	}
}

func TestEncode(t *testing.T) {
	for _, tt := range []struct {
		accept string
		ok     bool
	}{
		{"application/json", true},
		{"application/*", true},
		{"*/*", true},
		{"", true},
		{"text/html", false},
	} {
		t.Run(tt.accept, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			w := httptest.NewRecorder()
			err := Encode(w, req, map[string]string{"test": "value"})
			if !tt.ok {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}
			if body := w.Body.String(); body != `{"test":"value"}` {
				t.Errorf("unexpected body %q", body)
			}
		})
	}
}

func TestError(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	Error(w, req, httpError{404, errors.New("no such list")})
	if w.Code != 404 {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	var result struct {
		Status int    `json:"status"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Status != 404 || result.Err != "no such list" {
		t.Errorf("unexpected body %q", w.Body.String())
	}

	req.Header.Set("Accept", "text/plain")
	w = httptest.NewRecorder()
	Error(w, req, errors.New("boom"))
	if w.Code != 500 || w.Body.String() != "boom" {
		t.Errorf("expected a plain 500, got %d %q", w.Code, w.Body.String())
	}
}

func TestRequestStream(t *testing.T) {
	for _, tt := range []struct {
		accept string
		ok     bool
	}{
		{"text/event-stream", true},
		{"text/*", true},
		{"*/*", true},
		{"", true},
		{"application/json", false},
	} {
		t.Run(tt.accept, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			w := httptest.NewRecorder()
			stream, err := RequestStream(w, req)
			if !tt.ok {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stream == nil {
				t.Fatal("expected stream, got nil")
			}
			h := w.Header()
			if ct := h.Get("Content-Type"); ct != "text/event-stream" {
				t.Errorf("expected Content-Type text/event-stream, got %s", ct)
			}
			if cc := h.Get("Cache-Control"); cc != "no-cache" {
				t.Errorf("expected Cache-Control no-cache, got %s", cc)
			}
		})
	}
}

func hello(doc *html.Document) { doc.Div().ID("hello").Text("Hello") }

func TestElements(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "fragment",
			event:    Elements(html.Fragment(hello)),
			expected: "event: datastar-patch-elements\ndata: elements <div id=\"hello\">Hello</div>\n\n",
		},
		{
			name:  "mode and selector",
			event: Elements(html.Fragment(hello), Mode(ModeInner), Selector("#content")),
			expected: "event: datastar-patch-elements\ndata: mode inner\ndata: selector #content\n" +
				"data: elements <div id=\"hello\">Hello</div>\n\n",
		},
		{
			name:     "escaped text",
			event:    Elements(html.Fragment(func(doc *html.Document) { doc.P().Text("a\n\ndata: signals {}") })),
			expected: "event: datastar-patch-elements\ndata: elements <p>a\ndata: elements \ndata: elements data: signals {}</p>\n\n",
		},
		{
			name:     "multiple lines",
			event:    Elements(html.Static("<ul>\n  <li>one</li>\n</ul>\n")),
			expected: "event: datastar-patch-elements\ndata: elements <ul>\ndata: elements   <li>one</li>\ndata: elements </ul>\n\n",
		},
		{
			name:     "carriage returns",
			event:    Elements(html.Static("<p>one\rtwo\r\nthree\r</p>")),
			expected: "event: datastar-patch-elements\ndata: elements <p>one\ndata: elements two\ndata: elements three\ndata: elements </p>\n\n",
		},
		{
			name:     "escaped text with carriage return",
			event:    Elements(html.Fragment(func(doc *html.Document) { doc.P().Text("a\rdata: signals {}") })),
			expected: "event: datastar-patch-elements\ndata: elements <p>a\ndata: elements data: signals {}</p>\n\n",
		},
		{
			name:     "remove",
			event:    Remove("#hello"),
			expected: "event: datastar-patch-elements\ndata: mode remove\ndata: selector #hello\n\n",
		},
		{
			name:  "script",
			event: ExecuteScript("console.log('</script>')"),
			expected: "event: datastar-patch-elements\ndata: mode append\ndata: selector body\n" +
				"data: elements <script data-effect=\"el.remove()\">console.log('<\\/script>')</script>\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(tt.event.appendEvent(nil))
			if result != tt.expected {
				t.Errorf("expected:\n%q\ngot:\n%q", tt.expected, result)
			}
		})
	}
}

func TestSignal(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "object",
			event:    Signal(map[string]any{"user": "test", "count": 42}),
			expected: "event: datastar-patch-signals\ndata: signals {\"count\":42,\"user\":\"test\"}\n\n",
		},
		{
			name:     "number",
			event:    Signal(42),
			expected: "event: datastar-patch-signals\ndata: signals 42\n\n",
		},
		{
			name:     "if missing",
			event:    SignalIfMissing(map[string]string{"user": "test"}),
			expected: "event: datastar-patch-signals\ndata: onlyIfMissing true\ndata: signals {\"user\":\"test\"}\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(tt.event.appendEvent(nil))
			if result != tt.expected {
				t.Errorf("expected:\n%q\ngot:\n%q", tt.expected, result)
			}
		})
	}
}

func TestStreamEmit(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Accept", "text/event-stream")
	w := httptest.NewRecorder()
	stream, err := RequestStream(w, req)
	if err != nil {
		t.Fatalf("failed to create stream: %v", err)
	}

	signals := Signal(map[string]string{"user": "test"})
	patch := Elements(html.Fragment(hello))
	if err = stream.Emit(Batch(signals, patch)); err != nil {
		t.Fatalf("failed to emit events: %v", err)
	}
	if err = stream.Emit(Remove("#hello")); err != nil {
		t.Fatalf("failed to emit events: %v", err)
	}

	expected := "event: datastar-patch-signals\ndata: signals {\"user\":\"test\"}\n\n" +
		"event: datastar-patch-elements\ndata: elements <div id=\"hello\">Hello</div>\n\n" +
		"event: datastar-patch-elements\ndata: mode remove\ndata: selector #hello\n\n"
	if body := w.Body.String(); body != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, body)
	}
}

func TestOptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"mode":     func() { Mode("invalid\nmode") },
		"selector": func() { Selector("invalid\rselector") },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic for a newline")
				}
			}()
			fn()
		})
	}
}
