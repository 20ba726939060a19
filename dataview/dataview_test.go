package dataview_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	html "github.com/swdunlop/fluent-html-go"
	"github.com/swdunlop/fluent-html-go/dataview"
)

func TestCompact(t *testing.T) {
	secret := regexp.MustCompile(`^\.secret$`)
	rows := regexp.MustCompile(`^\.rows$`)
	tests := []struct {
		name    string
		content html.Content
		expect  string
	}{
		{`Scalars`, dataview.From([]any{`<s>`, 1.5, true, nil}), `<div class="array">` +
			`<div class="value">&lt;s&gt;</div>` +
			`<div class="value">1.5</div>` +
			`<div class="value"><span class="bool">true</span></div>` +
			`<div class="value"><span class="null">null</span></div>` +
			`</div>`},
		{`Empty`, dataview.FromJSON([]byte(`[]`)), `<div class="array empty">[]</div>`},
		{`Object`, dataview.From(map[string]any{`b`: []bool{true}, `a`: 1}), `<div class="object">` +
			`<div class="key label">a</div><div class="value">1</div>` +
			`<div class="key label">b</div><div class="value">` +
			`<div class="array"><div class="value"><span class="bool">true</span></div></div>` +
			`</div></div>`},
		{`Table`, dataview.FromJSON([]byte(`[{"n":1},{"n":2,"m":"x"},3]`)),
			`<div class="table" style="grid-template-columns: repeat(2, minmax(min-content, max-content));">` +
				`<div class="header label">n</div><div class="header label">m</div>` +
				`<div class="row"><div class="value">1</div><div class="value na">N/A</div></div>` +
				`<div class="row"><div class="value">2</div><div class="value">x</div></div>` +
				`<div class="row"><div class="value" style="grid-column: 1/-1;">3</div></div>` +
				`</div>`},
		{`Hook`, dataview.FromJSON([]byte(`{"ok":"y","secret":"x"}`),
			dataview.Hook(secret, func(path string, data gjson.Result) html.Fragment {
				return func(doc *html.Document) { doc.Span().Class(`redacted`).Text(`***`) }
			}),
			dataview.Hook(regexp.MustCompile(`.`), func(path string, data gjson.Result) html.Fragment {
				return nil // falls back to the default rendering
			}),
		), `<div class="object">` +
			`<div class="key label">ok</div><div class="value">y</div>` +
			`<div class="key label">secret</div><div class="value"><span class="redacted">***</span></div>` +
			`</div>`},
		{`TableHook`, dataview.FromJSON([]byte(`{"rows":[{"a":1},{"a":2}]}`),
			dataview.TableHook(rows, func(path string, data gjson.Result) gjson.Result {
				return gjson.Parse(`"2 rows"`)
			}),
		), `<div class="object"><div class="key label">rows</div><div class="value">2 rows</div></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(html.Append(nil, tt.content))
			if diff := cmp.Diff(tt.expect, got); diff != `` {
				t.Error(diff)
			}
		})
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := html.Render(&buf, func(doc *html.Document) {
		doc.Main().With(func(main *html.Flow) {
			dataview.Render[*html.Flow](main, gjson.Parse(`{"a":"b"}`))
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	expect := strings.Join([]string{
		`<main>`,
		`  <div class="object">`,
		`    <div class="key label">a</div>`,
		`    <div class="value">`,
		`      b`,
		`    </div>`,
		`  </div>`,
		`</main>`,
		``,
	}, "\n")
	if diff := cmp.Diff(expect, buf.String()); diff != `` {
		t.Error(diff)
	}
}

func TestStylesheet(t *testing.T) {
	if !strings.Contains(dataview.Stylesheet(), `.row { display: contents; }`) {
		t.Error(`missing row rule`)
	}
}
