// Package alpine adds helper functions for Alpine AJAX applications, which request parts of a page by listing
// their IDs in the X-Alpine-Target header.
package alpine

import (
	"net/http"
	"strings"

	html "github.com/swdunlop/fluent-html-go"
)

// A Part is a region of a page that an AJAX client can request by ID.  Render must write a single element with
// that ID, so the client can find the element it replaces.
type Part struct {
	ID     string
	Render html.Fragment
}

// AppendHTML implements html.Content by rendering the part without whitespace.
func (part Part) AppendHTML(buf []byte) []byte {
	if part.Render == nil {
		return buf
	}
	return part.Render.AppendHTML(buf)
}

// PartMap is a map of parts by ID provided to a page function by RenderPage.
type PartMap map[string]Part

// Parts indexes parts by their IDs.  Parts with an empty ID are left out.
func Parts(parts ...Part) PartMap {
	table := make(PartMap, len(parts))
	for _, part := range parts {
		if part.ID != `` {
			table[part.ID] = part
		}
	}
	return table
}

// Fragment returns the fragment that renders the part with the given ID; if there is no such part, the fragment
// renders nothing.
func (m PartMap) Fragment(id string) html.Fragment {
	if part, ok := m[id]; ok && part.Render != nil {
		return part.Render
	}
	return nothing
}

func nothing(*html.Document) {}

// RenderPage renders the full page if the X-Alpine-Target header is not present, otherwise, it uses Render to
// render the requested parts of the page.  The page function is given the parts by ID so it can include them
// in place.
func RenderPage(r *http.Request, doc *html.Document, page func(*html.Document, PartMap), parts ...Part) {
	targets := Targets(r)
	if len(targets) == 0 {
		page(doc, Parts(parts...))
		return
	}
	render(doc, targets, parts...)
}

// Render parses the X-Alpine-Target header and writes only the requested parts to the document, in the order
// they were specified as arguments to render.  (This is specified so the last part can be an "errors" part that
// lists any errors that occurred while rendering the other parts.)  It returns the number of parts written.
//
// Parts with an empty ID will not be included in the output.
func Render(r *http.Request, doc *html.Document, parts ...Part) int {
	return render(doc, Targets(r), parts...)
}

// Targets returns the set of IDs listed in the X-Alpine-Target header.  The set belongs to the caller, even when
// it is empty.
func Targets(r *http.Request) map[string]struct{} {
	seq := strings.Fields(r.Header.Get(`X-Alpine-Target`))
	targets := make(map[string]struct{}, len(seq))
	for _, target := range seq {
		targets[target] = struct{}{}
	}
	return targets
}

func render(doc *html.Document, targets map[string]struct{}, parts ...Part) int {
	n := 0
	for _, part := range parts {
		if part.ID == `` || part.Render == nil {
			continue
		}
		if _, ok := targets[part.ID]; ok {
			part.Render(doc)
			n++
		}
	}
	return n
}
