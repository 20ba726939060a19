package alpine_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	html "github.com/swdunlop/fluent-html-go"
	alpine "github.com/swdunlop/fluent-html-go/alpine-ajax"
)

var (
	list = alpine.Part{ID: `list`, Render: func(doc *html.Document) {
		doc.Ul().ID(`list`).With(func(ul *html.ListItems) { ul.Li().Text(`a`) })
	}}
	status = alpine.Part{ID: `status`, Render: func(doc *html.Document) {
		doc.P().ID(`status`).Text(`ok`)
	}}
	anonymous = alpine.Part{Render: func(doc *html.Document) { doc.P().Text(`hidden`) }}
)

func page(doc *html.Document, parts alpine.PartMap) {
	doc.Main().With(func(main *html.Flow) {
		main.Include(parts.Fragment(`list`))
		main.Include(parts.Fragment(`missing`))
		main.Include(parts.Fragment(`status`))
	})
}

func renderPage(t *testing.T, header string) string {
	t.Helper()
	req := httptest.NewRequest(`GET`, `/`, nil)
	if header != `` {
		req.Header.Set(`X-Alpine-Target`, header)
	}
	var buf bytes.Buffer
	doc := html.New(&buf, html.Compact())
	alpine.RenderPage(req, doc, page, list, status, anonymous)
	require.NoError(t, doc.Close())
	return buf.String()
}

func TestRenderPage(t *testing.T) {
	for _, tt := range []struct {
		name, header, expect string
	}{
		{`Full`, ``, `<main><ul id="list"><li>a</li></ul><p id="status">ok</p></main>`},
		{`One`, `status`, `<p id="status">ok</p>`},
		{`ArgumentOrder`, `status list`, `<ul id="list"><li>a</li></ul><p id="status">ok</p>`},
		{`Unknown`, `nope`, ``},
		{`Spaces`, `  list  `, `<ul id="list"><li>a</li></ul>`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, renderPage(t, tt.header))
		})
	}
}

func TestTargets(t *testing.T) {
	req := httptest.NewRequest(`GET`, `/`, nil)
	targets := alpine.Targets(req)
	assert.Empty(t, targets)
	targets[`list`] = struct{}{}
	assert.Empty(t, alpine.Targets(req))
	assert.Equal(t, `<main><ul id="list"><li>a</li></ul><p id="status">ok</p></main>`, renderPage(t, ``))

	req.Header.Set(`X-Alpine-Target`, ` list  status `)
	assert.Equal(t, map[string]struct{}{`list`: {}, `status`: {}}, alpine.Targets(req))
}

func TestRender(t *testing.T) {
	req := httptest.NewRequest(`GET`, `/`, nil)
	req.Header.Set(`X-Alpine-Target`, `list status`)
	var buf bytes.Buffer
	doc := html.New(&buf, html.Compact())
	n := alpine.Render(req, doc, list, anonymous)
	require.NoError(t, doc.Close())
	assert.Equal(t, 1, n)
	assert.Equal(t, `<ul id="list"><li>a</li></ul>`, buf.String())
}

func TestParts(t *testing.T) {
	parts := alpine.Parts(list, status, anonymous)
	assert.Len(t, parts, 2)
	assert.Equal(t, `<p id="status">ok</p>`, string(html.Append(nil, parts[`status`])))
	assert.Empty(t, html.Append(nil, parts.Fragment(`missing`)))
	assert.Empty(t, html.Append(nil, alpine.Part{ID: `empty`}))
}
