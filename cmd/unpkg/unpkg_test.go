package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeUnpkg(t *testing.T) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(`/alpinejs`, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, `/alpinejs@3.12.0/dist/cdn.min.js`, http.StatusFound)
	})
	mux.HandleFunc(`/alpinejs@3.12.0/dist/cdn.min.js`, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`/* alpine */`))
	})
	mux.HandleFunc(`/alpinejs@3.12.0`, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(`Content-Type`, `application/json`)
		w.Write([]byte(`{"package":"alpinejs","version":"3.12.0","files":[
			{"path":"/dist/cdn.min.js","type":"application/javascript; charset=utf-8","integrity":"sha384-abc"},
			{"path":"/dist/site.css","type":"text/css","integrity":"sha384-\"x\""}
		]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	prev := unpkgBase
	unpkgBase = srv.URL + `/`
	t.Cleanup(func() { unpkgBase = prev })
}

func TestResolve(t *testing.T) {
	fakeUnpkg(t)
	markup, err := resolve(`alpinejs`)
	require.NoError(t, err)
	assert.Equal(t,
		`<script src="`+unpkgBase+`alpinejs@3.12.0/dist/cdn.min.js" integrity="sha384-abc" crossorigin="anonymous"`+
			` referrerpolicy="no-referrer"></script>`+"\n",
		markup.String())
}

func TestStylesheet(t *testing.T) {
	fakeUnpkg(t)
	markup, err := resolve(`alpinejs@3.12.0/dist/site.css`)
	require.NoError(t, err)
	assert.Contains(t, markup.String(), `<link rel="stylesheet" href="`)
	assert.Contains(t, markup.String(), `integrity="sha384-&quot;x&quot;"`)
}

func TestCommand(t *testing.T) {
	fakeUnpkg(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{`--defer`, `--xhtml`, `alpinejs`, `alpinejs@3.12.0/dist/missing.js`})
	t.Cleanup(func() { opt.Defer, opt.XHTML = false, false })
	err := rootCmd.Execute()
	assert.EqualError(t, err, `1 of 2 paths could not be resolved`)
	assert.Contains(t, out.String(), `<script defer="defer" src="`)
}

func TestRxResource(t *testing.T) {
	for _, tt := range []struct{ path, pkg, version, file string }{
		{`alpinejs@3.12.0/dist/cdn.min.js`, `alpinejs`, `@3.12.0`, `/dist/cdn.min.js`},
		{`@alpinejs/focus@3.13.0/dist/cdn.min.js`, `@alpinejs/focus`, `@3.13.0`, `/dist/cdn.min.js`},
		{`htmx.org/dist/htmx.js`, `htmx.org`, ``, `/dist/htmx.js`},
	} {
		m := rxResource.FindStringSubmatch(tt.path)
		require.NotNil(t, m, tt.path)
		assert.Equal(t, []string{tt.pkg, tt.version, tt.file}, m[1:], tt.path)
	}
}
