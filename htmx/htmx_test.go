package htmx_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/swdunlop/fluent-html-go/htmx"
)

var (
	counter = htmx.Part{ID: `counter`, Render: func(doc *html.Document) {
		doc.Span().ID(`counter`).Text(`3`)
	}}
	errors = htmx.Part{ID: `errors`, Render: func(doc *html.Document) {
		doc.Div().ID(`errors`).Close()
	}}
)

func page(doc *html.Document, parts htmx.PartMap) {
	doc.P().With(func(p *html.Phrasing) {
		p.Text(`Count: `)
		p.Include(parts.Fragment(`counter`))
	})
	doc.Include(parts.Fragment(`errors`))
}

func TestRenderPage(t *testing.T) {
	for _, tt := range []struct {
		name, target, expect string
	}{
		{`Full`, ``, `<p>Count: <span id="counter">3</span></p><div id="errors"></div>`},
		{`Counter`, `counter`, `<span id="counter">3</span>`},
		{`Errors`, `errors`, `<div id="errors"></div>`},
		{`Unknown`, `other`, ``},
	} {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(`POST`, `/count`, nil)
			req.Header.Set(`HX-Request`, `true`)
			if tt.target != `` {
				req.Header.Set(`HX-Target`, tt.target)
			}
			var buf bytes.Buffer
			doc := html.New(&buf, html.Compact())
			htmx.RenderPage(req, doc, page, counter, errors)
			require.NoError(t, doc.Close())
			assert.Equal(t, tt.expect, buf.String())
			assert.True(t, htmx.IsRequest(req))
		})
	}
}

func TestRender(t *testing.T) {
	req := httptest.NewRequest(`GET`, `/`, nil)
	var buf bytes.Buffer
	doc := html.New(&buf, html.Compact())
	assert.False(t, htmx.Render(req, doc, counter))
	assert.False(t, htmx.IsRequest(req))

	req.Header.Set(`HX-Target`, `counter`)
	assert.True(t, htmx.Render(req, doc, errors, counter))
	require.NoError(t, doc.Close())
	assert.Equal(t, `<span id="counter">3</span>`, buf.String())
}
