// Package datastar serves Datastar clients: signals arrive as JSON, and changes go back as Server Sent Events
// that patch elements or signals.  The official Go SDK covers more of the protocol; what this package adds is that
// patched elements are rendered by the html package, so the markup in an event follows the same encoding rules
// as a page.
//
// Datastar also accepts text/html and text/javascript responses, so not every handler needs RequestStream.
package datastar

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Decode reads signals into data, from the datastar query parameter of a GET or from a JSON body otherwise.  Form
// bodies are not supported.  The errors carry the HTTP status Error reports them with: 415 for a body that is
// not JSON, 400 for JSON that does not decode.
func Decode(data any, r *http.Request) error {
	var err error
	switch contentType := r.Header.Get(`Content-Type`); {
	case r.Method == `GET`:
		err = json.Unmarshal([]byte(r.URL.Query().Get(`datastar`)), data)
	case contentType == `application/json`:
		err = json.NewDecoder(r.Body).Decode(data)
	default:
		return statusError(http.StatusUnsupportedMediaType,
			fmt.Errorf(`unsupported content type %q for method %q`, contentType, r.Method))
	}
	if err != nil {
		return statusError(http.StatusBadRequest, fmt.Errorf(`could not decode signals: %w`, err))
	}
	return nil
}

// Encode answers with data as JSON.  If the client does not accept application/json, nothing is written and the
// error carries a 406.
func Encode(w http.ResponseWriter, r *http.Request, data any) error {
	if !accepts(r, `application/json`) {
		return statusError(http.StatusNotAcceptable, errors.New(`client does not accept JSON`))
	}
	writeJSON(w, http.StatusOK, data)
	return nil
}

// Error answers with err, as a JSON object with status and error fields if the client accepts JSON and as plain
// text otherwise.  The status is 500 unless some error in the chain has an HTTPStatus method, as the errors
// returned by this package do.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		status = se.HTTPStatus()
	}
	if !accepts(r, `application/json`) {
		writeText(w, status, err.Error())
		return
	}
	writeJSON(w, status, struct {
		Status int    `json:"status"`
		Error  string `json:"error"`
	}{status, err.Error()})
}

func statusError(status int, err error) error { return httpError{status, err} }

type httpError struct {
	status int
	err    error
}

func (err httpError) Unwrap() error   { return err.err }
func (err httpError) Error() string   { return err.err.Error() }
func (err httpError) HTTPStatus() int { return err.status }

// accepts reports whether the Accept header of r admits mediaType, directly or by a wildcard.  A request with no
// Accept header accepts anything, as curl and netcat do.
func accepts(r *http.Request, mediaType string) bool {
	headers := r.Header.Values(`Accept`)
	if len(headers) == 0 {
		return true
	}
	major, _, _ := strings.Cut(mediaType, `/`)
	for _, header := range headers {
		for _, accept := range strings.Split(header, `,`) {
			accept, _, _ = strings.Cut(accept, `;`)
			switch accept = strings.TrimSpace(accept); accept {
			case `*/*`, mediaType, major + `/*`:
				return true
			}
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	msg, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	writeBody(w, status, `application/json`, msg)
}

func writeText(w http.ResponseWriter, status int, text string) {
	writeBody(w, status, `text/plain; charset=utf-8`, []byte(text))
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	h := w.Header()
	h.Set(`Content-Type`, contentType)
	h.Set(`Content-Length`, strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
