package html_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	html "github.com/swdunlop/fluent-html-go"
	nethtml "golang.org/x/net/html"
)

// page renders a document that exercises most content models.
func page(doc *html.Document) {
	doc.Doctype()
	doc.HTML().Lang(`en`).With(func(root *html.Sections) {
		root.Head().With(func(head *html.Metadata) {
			head.Meta().Charset(`utf-8`).Close()
			head.Title().Text(`Round <trip>`)
			head.Link().Rel(`stylesheet`).Href(`/site.css`).Close()
			head.Script().Defer().Src(`/site.js`).Close()
		})
		root.Body().With(func(body *html.Flow) {
			body.Header().With(func(header *html.Flow) {
				header.Nav().With(func(nav *html.Flow) {
					nav.Ul().With(func(ul *html.ListItems) {
						for _, name := range []string{`one`, `two`, `three`} {
							ul.Li().With(func(li *html.Flow) {
								li.A().Href(`/` + name).Text(name)
							})
						}
					})
				})
			})
			body.Main().ID(`main`).With(func(main *html.Flow) {
				main.Div().Class(`card`).Title(`"quoted" & <angled>`).With(func(card *html.Flow) {
					card.H2().Text(`Card`)
					card.P().With(func(p *html.Phrasing) {
						p.Text(`Some `)
						p.Strong().Text(`strong`)
						p.Text(` text.`)
						p.Br().Close()
						p.Code().Text(`a < b`)
					})
					card.Pre().Text("\n  indented\n")
				})
				main.Table().With(func(table *html.TableParts) {
					table.Caption().Text(`Numbers`)
					table.Thead().With(func(thead *html.Rows) {
						thead.Tr().With(func(tr *html.Cells) {
							tr.Th().Scope(`col`).Text(`N`)
							tr.Th().Scope(`col`).Text(`Square`)
						})
					})
					table.Tbody().With(func(tbody *html.Rows) {
						for i := 1; i <= 3; i++ {
							tbody.Tr().With(func(tr *html.Cells) {
								tr.Td().Textf(`%d`, i)
								tr.Td().Textf(`%d`, i*i)
							})
						}
					})
				})
				main.Form().Action(`/submit`).Method(html.MethodPost).With(func(form *html.Flow) {
					form.Fieldset().With(func(fs *html.Legended) {
						fs.Legend().Text(`Choose`)
						fs.Label().For(`pick`).Text(`Pick`)
						fs.Select().ID(`pick`).Name(`pick`).With(func(s *html.SelectOptions) {
							s.Optgroup().Label(`Odd`).With(func(g *html.GroupOptions) {
								g.Option().Value(`1`).Text(`One`)
								g.Option().Value(`3`).Selected().Text(`Three`)
							})
							s.Option().Value(`2`).Text(`Two`)
						})
						fs.Textarea().Name(`note`).Rows(3).Text(`</textarea> is escaped`)
						fs.Textarea().Name(`draft`).Text("\nsecond line")
					})
					form.Button().Type(html.ButtonSubmit).Text(`Send`)
				})
				main.Figure().With(func(fig *html.Captioned) {
					fig.Img().Src(`/chart.png`).Alt(`Chart`).Close()
					fig.Figcaption().Text(`A chart`)
				})
				main.Details().Open().With(func(d *html.Disclosure) {
					d.Summary().Text(`More`)
					d.Dl().With(func(dl *html.Terms) {
						dl.Dt().Text(`Term`)
						dl.Dd().Text(`Definition`)
					})
				})
			})
		})
	})
}

func TestRoundTrip(t *testing.T) {
	for _, option := range []struct {
		name    string
		options []html.Option
	}{
		{`Pretty`, nil},
		{`Compact`, []html.Option{html.Compact()}},
		{`XHTML`, []html.Option{html.WithSerialization(html.XHTML)}},
	} {
		t.Run(option.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := html.Render(&buf, page, option.options...); err != nil {
				t.Fatal(err)
			}
			root, err := nethtml.Parse(&buf)
			if err != nil {
				t.Fatal(err)
			}
			count := func(sel string, expect int) {
				t.Helper()
				got := len(cascadia.MustCompile(sel).MatchAll(root))
				if got != expect {
					t.Errorf(`%q matched %v nodes, expected %v`, sel, got, expect)
				}
			}
			count(`html > head > title`, 1)
			count(`html > head > link[rel=stylesheet][href="/site.css"]`, 1)
			count(`html > head > script[defer][src="/site.js"]`, 1)
			count(`body > header > nav > ul > li > a`, 3)
			count(`body > main#main > div.card > h2`, 1)
			count(`div.card > p > strong`, 1)
			count(`div.card > p > br`, 1)
			count(`main > table > caption`, 1)
			count(`main > table > thead > tr > th[scope=col]`, 2)
			count(`main > table > tbody > tr > td`, 6)
			count(`form[action="/submit"][method=post] > fieldset > legend`, 1)
			count(`fieldset > select#pick > optgroup[label=Odd] > option`, 2)
			count(`fieldset > select#pick > option`, 1)
			count(`option[selected][value="3"]`, 1)
			count(`form > button[type=submit]`, 1)
			count(`main > figure > img[alt=Chart]`, 1)
			count(`main > figure > figcaption`, 1)
			count(`main > details[open] > summary`, 1)
			count(`details > dl > dt + dd`, 1)

			text := func(sel, expect string) {
				t.Helper()
				n := cascadia.MustCompile(sel).MatchFirst(root)
				if n == nil {
					t.Errorf(`%q matched nothing`, sel)
					return
				}
				if got := textOf(n); got != expect {
					t.Errorf(`%q has text %q, expected %q`, sel, got, expect)
				}
			}
			text(`title`, `Round <trip>`)
			text(`div.card > p > code`, `a < b`)
			text(`textarea`, `</textarea> is escaped`)
			text(`textarea[name=draft]`, "\nsecond line")
			text(`div.card > pre`, "\n  indented\n")
			text(`tbody > tr:last-child > td:last-child`, `9`)

			card := cascadia.MustCompile(`div.card`).MatchFirst(root)
			if card == nil {
				t.Fatal(`no card`)
			}
			if title := attrOf(card, `title`); title != `"quoted" & <angled>` {
				t.Errorf(`card title round tripped as %q`, title)
			}
		})
	}
}

func textOf(n *nethtml.Node) string {
	var sb strings.Builder
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		if n.Type == nethtml.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attrOf(n *nethtml.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ``
}
