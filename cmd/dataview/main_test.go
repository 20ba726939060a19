package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadValues(t *testing.T) {
	values, err := readValues(nil, []string{
		writeFile(t, `one.json`, `{"a": [1, 2]}`),
		writeFile(t, `many.jsonl`, "{\"b\": 1}\n\n{\"b\": 2}\n"),
	})
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, `2`, values[0].Get(`a.1`).Raw)
	assert.Equal(t, int64(2), values[2].Get(`b`).Int())

	values, err = readValues(strings.NewReader(`"hello"`), nil)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, `hello`, values[0].Str)

	_, err = readValues(nil, []string{writeFile(t, `bad.json`, `{"a": `)})
	assert.ErrorContains(t, err, `invalid JSON`)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, settings{Title: `Results & Stuff`, Compact: true, Charset: `utf-8`, Hide: []string{`^\.secret$`}},
		[]gjson.Result{gjson.Parse(`{"name": "<b>", "secret": "x"}`)})
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<!DOCTYPE html>`), out)
	assert.Contains(t, out, `<meta charset="utf-8">`)
	assert.Contains(t, out, `<title>Results &amp; Stuff</title>`)
	assert.Contains(t, out, `<h1>Results &amp; Stuff</h1>`)
	assert.Contains(t, out, `<section class="dataview"><div class="object">`)
	assert.Contains(t, out, `&lt;b&gt;`)
	assert.Contains(t, out, `<div class="elide" title=".secret">…</div>`)
	assert.NotContains(t, out, `>x<`)
}

func TestMinify(t *testing.T) {
	var plain, minified bytes.Buffer
	require.NoError(t, render(&plain, settings{Charset: `utf-8`}, nil))
	require.NoError(t, render(&minified, settings{Charset: `utf-8`, Minify: true}, nil))
	assert.Less(t, minified.Len(), plain.Len())
	assert.Contains(t, plain.String(), `font-style: italic;`)
	assert.Contains(t, minified.String(), `font-style:italic`)
	assert.NotContains(t, minified.String(), `font-style: italic;`)
}

func TestBadPattern(t *testing.T) {
	err := render(&bytes.Buffer{}, settings{Charset: `utf-8`, Hide: []string{`(`}}, nil)
	assert.ErrorContains(t, err, `invalid --hide pattern`)
}

func TestCommand(t *testing.T) {
	config := writeFile(t, `dataview.toml`, "title = \"From TOML\"\ncompact = true\nhide = [\"^\\\\.b$\"]\n")
	input := writeFile(t, `input.json`, `{"a": 1, "b": 2}`)

	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{`--config`, config, `--title`, `From Flags`, input})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `<title>From Flags</title>`)
	assert.Contains(t, out.String(), `<div class="elide" title=".b">…</div>`)
	assert.NotContains(t, out.String(), "\n  ")

	output := filepath.Join(t.TempDir(), `page.html`)
	cmd = newCommand()
	cmd.SetArgs([]string{`--config`, config, `-o`, output, `--xhtml`, input})
	require.NoError(t, cmd.Execute())
	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(page), `<title>From TOML</title>`)
	assert.Contains(t, string(page), `<meta charset="utf-8" />`)
}

func TestUnknownSetting(t *testing.T) {
	config := writeFile(t, `dataview.toml`, "titel = \"typo\"\n")
	cmd := newCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{`--config`, config})
	cmd.SetIn(strings.NewReader(`{}`))
	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown setting "titel"`)
}
