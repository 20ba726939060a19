package hog_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/swdunlop/fluent-html-go/hog"
)

func serve(t *testing.T, handler http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)
	req := httptest.NewRequest(`GET`, `/page`, nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	hog.Middleware()(handler).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return rec, entry
}

func TestMiddleware(t *testing.T) {
	rec, entry := serve(t, func(w http.ResponseWriter, r *http.Request) {
		hog.From(r.Context()).Debug().Msg(`not logged at info`)
		_ = html.Render(w, func(doc *html.Document) { doc.P().Text(`ok`) }, html.Compact())
	})
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, `<p>ok</p>`, rec.Body.String())
	assert.Equal(t, `info`, entry[`level`])
	assert.Equal(t, `GET`, entry[`method`])
	assert.Equal(t, `/page`, entry[`path`])
	assert.EqualValues(t, 200, entry[`status`])
	assert.EqualValues(t, 9, entry[`wrote`])
	assert.NotContains(t, entry, `type`)
}

func TestContentType(t *testing.T) {
	_, entry := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
		_, _ = w.Write([]byte(`<p></p>`))
	})
	assert.Equal(t, `text/html; charset=utf-8`, entry[`type`])
}

func TestStatusLevels(t *testing.T) {
	for _, tt := range []struct {
		status int
		level  string
	}{
		{404, `warn`},
		{503, `error`},
	} {
		_, entry := serve(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})
		assert.Equal(t, tt.level, entry[`level`])
	}
}

func TestRecoverFault(t *testing.T) {
	rec, entry := serve(t, func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		doc := html.New(&buf)
		doc.Div().ID(`open`)
		doc.Span() // the div was never given a body
		_, _ = w.Write(buf.Bytes())
	})
	assert.Equal(t, 500, rec.Code)
	assert.Equal(t, `panic`, entry[`level`])
	assert.Equal(t, html.ErrTagPending.Error(), entry[`fault`])
	assert.Contains(t, entry[`panic`], html.ErrTagPending.Error())
	assert.NotEmpty(t, entry[`stack`])
}

func TestRecoverOther(t *testing.T) {
	rec, entry := serve(t, func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New(`boom`))
	})
	assert.Equal(t, 500, rec.Code)
	assert.Equal(t, `boom`, entry[`panic`])
	assert.NotContains(t, entry, `fault`)
}

func TestFault(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	err := error(&html.StateError{Err: html.ErrNotOpen, Tag: `div`})
	hog.Fault(log.Error(), err).Msg(``)
	assert.JSONEq(t, `{"level":"error","fault":"element is not open","tag":"div"}`, buf.String())

	buf.Reset()
	hog.Fault(log.Error(), errors.New(`other`)).Msg(``)
	assert.JSONEq(t, `{"level":"error","error":"other"}`, buf.String())
}
