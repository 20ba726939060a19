// Package htmx adds helper functions for HTMX applications, which name the element they will swap in the
// HX-Target header.
package htmx

import (
	"net/http"

	html "github.com/swdunlop/fluent-html-go"
	alpine "github.com/swdunlop/fluent-html-go/alpine-ajax"
)

// A Part is a region of a page with an ID that can be requested by an HTMX client.
type Part = alpine.Part

// PartMap is a map of parts by ID provided to a page function by RenderPage.
type PartMap = alpine.PartMap

// IsRequest reports whether the request was made by HTMX.
func IsRequest(r *http.Request) bool { return r.Header.Get(`HX-Request`) == `true` }

// RenderPage renders the full page if the HX-Target header is not present, otherwise, it uses Render to render
// the targeted part of the page.
func RenderPage(r *http.Request, doc *html.Document, page func(*html.Document, PartMap), parts ...Part) {
	if target := r.Header.Get(`HX-Target`); target != `` {
		render(doc, target, parts...)
		return
	}
	page(doc, alpine.Parts(parts...))
}

// Render parses the HX-Target header and writes the part that matches.  This writes nothing and returns false
// if no parts match.
//
// Parts with an empty ID will never match.
func Render(r *http.Request, doc *html.Document, parts ...Part) bool {
	return render(doc, r.Header.Get(`HX-Target`), parts...)
}

func render(doc *html.Document, target string, parts ...Part) bool {
	if target == `` {
		return false
	}
	for _, part := range parts {
		if part.ID == target && part.Render != nil {
			part.Render(doc)
			return true
		}
	}
	return false
}
