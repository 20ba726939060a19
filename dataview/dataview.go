// Package dataview renders JSON values as nested HTML grids: objects as key and value pairs, arrays as columns of
// values, and arrays of objects as tables.  Anything that marshals to JSON can be viewed.
package dataview

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/tidwall/gjson"
)

// Stylesheet returns the CSS that lays out the grids; colors and fonts are left to the page.  The options are
// accepted for symmetry with Render and do not change the result.
func Stylesheet(options ...Option) string {
	return stylesheet
}

const stylesheet = `
.object, .array, .table { display: grid; width: fit-content; }
.row { display: contents; }
.object { grid-template-columns: minmax(min-content, max-content) 1fr; }
`

// From renders a Go value by way of its JSON encoding.  It panics if the value cannot be marshalled.
func From(data any, options ...Option) html.Fragment {
	js, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return FromJSON(js, options...)
}

// FromJSON renders a JSON document, which must be valid; see gjson.Valid.
func FromJSON(js []byte, options ...Option) html.Fragment {
	return FromGJSON(gjson.ParseBytes(js), options...)
}

// FromGJSON renders a value that has already been parsed.
func FromGJSON(data gjson.Result, options ...Option) html.Fragment {
	return func(doc *html.Document) { Render[*html.Document](doc, data, options...) }
}

// Render writes a GJSON result into any content model that permits flow content.  Objects become two column grids
// of keys and values, arrays become a column of values, and arrays containing at least one object become a table
// with one column per key.
func Render[C any](c html.FlowContent[C], data gjson.Result, options ...Option) C {
	cfg := &config{}
	for _, option := range options {
		option(cfg)
	}
	return value(cfg, c, data, ``)
}

// Hook replaces the rendering of values whose path matches rx.  Paths start with a dot and join keys and array
// indices with dots, like .persons.0.name.  The first hook that returns a non-nil fragment wins; if none do, the
// value is rendered as usual.
func Hook(rx *regexp.Regexp, hookFn func(path string, data gjson.Result) html.Fragment) Option {
	return func(cfg *config) {
		cfg.hooks = append(cfg.hooks, hook{rx, hookFn})
	}
}

// TableHook rewrites an array that would be rendered as a table, if its path matches rx, before any Hook sees it.
// Every matching table hook is applied in turn.
func TableHook(rx *regexp.Regexp, hookFn func(path string, data gjson.Result) gjson.Result) Option {
	return func(cfg *config) {
		cfg.tableHooks = append(cfg.tableHooks, tableHook{rx, hookFn})
	}
}

// An Option changes how values are rendered.
type Option func(*config)

type config struct {
	hooks      []hook
	tableHooks []tableHook
}

type hook struct {
	rx   *regexp.Regexp
	hook func(path string, data gjson.Result) html.Fragment
}

type tableHook struct {
	rx   *regexp.Regexp
	hook func(path string, data gjson.Result) gjson.Result
}

func value[C any](cfg *config, c html.FlowContent[C], data gjson.Result, path string) C {
	if isTabular(data) {
		for _, hook := range cfg.tableHooks {
			if hook.rx.MatchString(path) {
				data = hook.hook(path, data)
			}
		}
	}
	for _, hook := range cfg.hooks {
		if hook.rx.MatchString(path) {
			if fragment := hook.hook(path, data); fragment != nil {
				return c.Include(fragment)
			}
		}
	}
	if isTabular(data) {
		return table(cfg, c, data, path)
	}
	return scalar(cfg, c, data, path)
}

func scalar[C any](cfg *config, c html.FlowContent[C], data gjson.Result, path string) C {
	switch data.Type {
	case gjson.Null:
		return c.Span().Class(`null`).Text(`null`)
	case gjson.False:
		return c.Span().Class(`bool`).Text(`false`)
	case gjson.True:
		return c.Span().Class(`bool`).Text(`true`)
	case gjson.Number:
		if len(data.Raw) > 0 {
			return c.Text(data.Raw)
		}
		return c.Text(data.String())
	case gjson.String:
		return c.Text(data.Str)
	default:
		switch {
		case data.IsArray():
			return array(cfg, c, data, path)
		case data.IsObject():
			return object(cfg, c, data, path)
		default:
			panic(fmt.Errorf(`unknown gjson type %v at %q`, data.Type, path))
		}
	}
}

func array[C any](cfg *config, c html.FlowContent[C], data gjson.Result, path string) C {
	seq := data.Array()
	if len(seq) == 0 {
		return c.Div().Class(`array`, `empty`).Text(`[]`)
	}
	path += "."
	return c.Div().Class(`array`).With(func(div *html.Flow) {
		for ix, item := range seq {
			div.Div().Class(`value`).With(func(cell *html.Flow) {
				value[*html.Flow](cfg, cell, item, path+strconv.Itoa(ix))
			})
		}
	})
}

func table[C any](cfg *config, c html.FlowContent[C], data gjson.Result, path string) C {
	seq := data.Array()
	labels := columnsOf(seq)
	path += "."
	grid := `grid-template-columns: repeat(` + strconv.Itoa(len(labels)) + `, minmax(min-content, max-content));`
	return c.Div().Class(`table`).Style(grid).With(func(div *html.Flow) {
		for _, label := range labels {
			div.Div().Class(`header`, `label`).Text(label)
		}
		for ix, item := range seq {
			div.Div().Class(`row`).With(func(row *html.Flow) {
				if item.IsObject() {
					cells(cfg, row, item, labels, path)
					return
				}
				row.Div().Class(`value`).Style(`grid-column: 1/-1;`).With(func(cell *html.Flow) {
					value[*html.Flow](cfg, cell, item, path+strconv.Itoa(ix))
				})
			})
		}
	})
}

// columnsOf returns the keys of every object in seq, in order of first appearance.  Items that are not objects
// contribute nothing.
func columnsOf(seq []gjson.Result) []string {
	var labels []string
	seen := make(map[string]struct{}, 32)
	for _, item := range seq {
		if !item.IsObject() {
			continue
		}
		item.ForEach(func(key, _ gjson.Result) bool {
			if _, ok := seen[key.Str]; !ok {
				seen[key.Str] = struct{}{}
				labels = append(labels, key.Str)
			}
			return true
		})
	}
	return labels
}

// cells writes one cell per column for an object row; missing keys are marked N/A.
func cells(cfg *config, row *html.Flow, item gjson.Result, labels []string, path string) {
	fields := make(map[string]gjson.Result, len(labels))
	item.ForEach(func(key, field gjson.Result) bool {
		fields[key.Str] = field
		return true
	})
	for _, label := range labels {
		field, ok := fields[label]
		if !ok {
			row.Div().Class(`value`, `na`).Text(`N/A`)
			continue
		}
		row.Div().Class(`value`).With(func(cell *html.Flow) {
			value[*html.Flow](cfg, cell, field, path+label)
		})
	}
}

func object[C any](cfg *config, c html.FlowContent[C], data gjson.Result, path string) C {
	path += "."
	return c.Div().Class(`object`).With(func(div *html.Flow) {
		data.ForEach(func(key, field gjson.Result) bool {
			div.Div().Class(`key`, `label`).Text(key.Str)
			div.Div().Class(`value`).With(func(cell *html.Flow) {
				value[*html.Flow](cfg, cell, field, path+key.Str)
			})
			return true
		})
	})
}

func isTabular(data gjson.Result) bool {
	if !data.IsArray() {
		return false
	}
	tabular := false
	data.ForEach(func(_, item gjson.Result) bool {
		if item.IsObject() {
			tabular = true
			return false
		}
		return true
	})
	return tabular
}
