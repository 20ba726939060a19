package deadmanswitch_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/swdunlop/fluent-html-go/deadmanswitch"
)

func TestScript(t *testing.T) {
	dms := deadmanswitch.New(
		deadmanswitch.Path(`/sse</script>`),
		deadmanswitch.ReloadOnReconnect(),
		deadmanswitch.OnDisconnect(`console.log(1)`, `console.log(2)`),
	)
	assert.Equal(t, `/sse</script>`, dms.Path())

	markup := string(html.Append(nil, dms))
	assert.True(t, strings.HasPrefix(markup, `<script>(function(){`), markup)
	assert.True(t, strings.HasSuffix(markup, `})()</script>`), markup)
	assert.Equal(t, 1, strings.Count(markup, `</script>`), `the path must not close the script early`)
	assert.Contains(t, markup, `new EventSource("/sse\u003c/script\u003e")`)
	assert.Contains(t, markup, "\tvar hooks = {connect: [], "+
		"disconnect: [function(){console.log(1)}, function(){console.log(2)}], "+
		"reconnect: [function(){window.location.reload()}]};\n")
}

func TestRender(t *testing.T) {
	dms := deadmanswitch.New()
	var buf bytes.Buffer
	err := html.Render(&buf, func(doc *html.Document) {
		doc.Body().With(func(body *html.Flow) {
			body.Include(html.Fragment(dms.Render))
		})
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "<body>\n  <script>(function(){"), buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "})()</script>\n</body>\n"), buf.String())
}

func TestServeHTTP(t *testing.T) {
	dms := deadmanswitch.New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(`GET`, dms.Path(), nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	dms.ServeHTTP(rec, req)
	assert.Equal(t, `text/event-stream`, rec.Header().Get(`Content-Type`))
	assert.Equal(t, "event: connected\ndata: \n\n", rec.Body.String())
}
