package encode

import (
	"bytes"
	"strings"
	"testing"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		name   string
		ctx    Context
		input  string
		expect string
	}{
		{`PlainText`, Text, `Hello`, `Hello`},
		{`TextMarkup`, Text, `<b>&amp;</b>`, `&lt;b&gt;&amp;amp;&lt;/b&gt;`},
		{`TextQuotes`, Text, `"quoted" 'single'`, `"quoted" 'single'`},
		{`AttributeQuotes`, Attribute, `say "hi" & 'bye'`, `say &quot;hi&quot; &amp; &#39;bye&#39;`},
		{`AttributeMarkup`, Attribute, `<script>`, `&lt;script&gt;`},
		{`URLPlain`, URL, `https://example.com/a/b?c=d#e`, `https://example.com/a/b?c=d#e`},
		{`URLAmpersand`, URL, `/search?q=a&page=2`, `/search?q=a&amp;page=2`},
		{`URLSpace`, URL, `/a b`, `/a%20b`},
		{`URLQuote`, URL, `/"onmouseover="x`, `/%22onmouseover=%22x`},
		{`URLExistingEscape`, URL, `/a%20b`, `/a%20b`},
		{`URLBarePercent`, URL, `/100%`, `/100%25`},
		{`URLUnicode`, URL, `/café`, `/caf%C3%A9`},
		{`ScriptPlain`, Script, `if (a < b && c > d) {}`, `if (a < b && c > d) {}`},
		{`ScriptEnd`, Script, `x = "</script>"`, `x = "<\/script>"`},
		{`ScriptEndUpper`, Script, `x = "</SCRIPT>"`, `x = "<\/SCRIPT>"`},
		{`ScriptComment`, Script, `<!-- x`, `<\!-- x`},
		{`StyleEnd`, Style, `a::after{content:"</style>"}`, `a::after{content:"<\/style>"}`},
		{`StyleKeepsScript`, Style, `</script>`, `</script>`},
		{`Comment`, Comment, ` note `, ` note `},
		{`CommentDashes`, Comment, `a - b -- c <!- d ->`, `a - b -- c <!- d ->`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Append(nil, tt.ctx, tt.input))
			t.Log(`generated:`, got)
			if got != tt.expect {
				t.Error(` expected:`, tt.expect)
			}
		})
	}
}

func TestAppendNeverLeaksMarkup(t *testing.T) {
	inputs := []string{`"><img src=x onerror=alert(1)>`, `&quot;`, `</a>`, `'"<>&`}
	for _, ctx := range []Context{Attribute, URL} {
		for _, input := range inputs {
			got := String(ctx, input)
			if strings.ContainsAny(got, `"<>'`) {
				t.Errorf(`%v: %q leaked markup as %q`, ctx, input, got)
			}
			if strings.Contains(strings.ReplaceAll(got, `&amp;`, ``), `&quot;&quot;`) {
				t.Errorf(`%v: %q double encoded as %q`, ctx, input, got)
			}
		}
	}
}

func TestCommentPanics(t *testing.T) {
	for _, input := range []string{`a --> b`, `a --!> b`, `>a`, `->a`, `->`, `>`, `a <!-- b`, `a <!-`} {
		t.Run(input, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error(`expected a panic`)
				}
			}()
			Append(nil, Comment, input)
		})
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := Writer(&buf, Attribute)
	for _, part := range []string{`a "b"`, ` & `, `<c>`} {
		n, err := w.Write([]byte(part))
		if err != nil {
			t.Fatal(err)
		}
		if n != len(part) {
			t.Errorf(`wrote %v of %v bytes`, n, len(part))
		}
	}
	expect := `a &quot;b&quot; &amp; &lt;c&gt;`
	if got := buf.String(); got != expect {
		t.Errorf(`expected %q, got %q`, expect, got)
	}
}
