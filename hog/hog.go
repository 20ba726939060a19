// Package hog provides middleware for logging HTTP requests that render HTML, recovering from panics using zerolog
// and a minimum of spam.  Panics raised by a Document for misuse, such as writing an attribute after the body
// of an element, are reported with the fault that caused them.
package hog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	html "github.com/swdunlop/fluent-html-go"
)

// An Inject extends a log context, for example with the user or request ID.
type Inject = func(zerolog.Context) zerolog.Context

// From will return the logger from the provided context.  This is introduced into a request context by the
// Middleware.  We use the same context key as zerolog Ctx and WithContext to improve interoperability.
func From(ctx context.Context, injects ...Inject) *zerolog.Logger {
	log := zerolog.Ctx(ctx)
	if len(injects) == 0 || log == nil {
		return log
	}
	z := log.With()
	for _, inject := range injects {
		z = inject(z)
	}
	next := z.Logger()
	return &next
}

// Middleware returns a middleware that logs requests and recovers from panics.  The inject functions (if present)
// can extend the request log context with information, such as the user or request ID.  See the For function for a
// list of fields added to the log context.  Fields logged after the middleware completes:
//
//   - status: the HTTP status code of the response
//   - wrote: the number of bytes written to the response
//   - took: the number of milliseconds the request took to process
//   - type: the content type of the response, if one was set
//   - panic: the panic message, if the request panicked
//   - fault: the misused element and the kind of misuse, if a Document panicked
//   - stack: the stack trace, if the request panicked, as a list of strings where each string is a function and line.
//
// If a handler panics before writing anything, the middleware answers with a 500.
func Middleware(injects ...Inject) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			log := For(r, injects...)
			r = r.WithContext(log.WithContext(r.Context()))
			defer logResponse(log, ww, r, start)
			next.ServeHTTP(ww, r)
		})
	}
}

// With returns a new context with the provided injectors applied to the log context.  If there are no injectors,
// then the context is returned unchanged.
func With(ctx context.Context, injects ...Inject) context.Context {
	if len(injects) == 0 {
		return ctx
	}
	log := zerolog.Ctx(ctx)
	z := log.With()
	for _, inject := range injects {
		z = inject(z)
	}
	return z.Logger().WithContext(ctx)
}

// For will return a logger for the provided request, applying any injectors to the log context.  It will add the
// following fields to the log context:
//
//   - remote_addr: the remote address of the request
//   - method: the HTTP method of the request
//   - path: the path of the request
//
// NOTE: This is not necessary if you are using Middleware.
func For(r *http.Request, injects ...Inject) *zerolog.Logger {
	prev := zerolog.Ctx(r.Context())
	z := prev.With().
		Str(`remote_addr`, r.RemoteAddr).
		Str(`method`, r.Method).
		Str(`path`, r.URL.Path)
	for _, inject := range injects {
		z = inject(z)
	}
	log := z.Logger()
	return &log
}

// Fault adds the fault fields of a Document state error to an event; other errors are added with Err.
func Fault(evt *zerolog.Event, err error) *zerolog.Event {
	var se *html.StateError
	if errors.As(err, &se) {
		return evt.Str(`fault`, se.Err.Error()).Str(`tag`, se.Tag)
	}
	return evt.Err(err)
}

func logResponse(log *zerolog.Logger, ww middleware.WrapResponseWriter, r *http.Request, start time.Time) {
	var evt *zerolog.Event
	if e := recover(); e != nil {
		if e == http.ErrAbortHandler {
			panic(e) // rethrow, http will handle it.
		}
		evt = logRecovery(log, e)
		if ww.BytesWritten() == 0 && ww.Status() == 0 {
			http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	} else {
		status := ww.Status()
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		evt = evt.Int(`status`, status).
			Int(`wrote`, ww.BytesWritten()).
			Int64(`took`, time.Since(start).Milliseconds())
		if contentType := ww.Header().Get(`Content-Type`); contentType != `` {
			evt = evt.Str(`type`, contentType)
		}
	}
	evt.Msg(``)
}

func logRecovery(log *zerolog.Logger, e any) *zerolog.Event {
	evt := log.WithLevel(zerolog.PanicLevel)
	evt = addStackTrace(evt, 4)
	if err, ok := e.(error); ok {
		var se *html.StateError
		if errors.As(err, &se) {
			evt = Fault(evt, se)
		}
	}
	return evt.Str(`panic`, fmt.Sprint(e))
}

// addStackTrace adds the callers above skip as function:line strings.  A recovered panic already shows where it
// came from, so no error wrapping library is consulted.
func addStackTrace(evt *zerolog.Event, skip int) *zerolog.Event {
	var calls [64]uintptr
	n := runtime.Callers(skip+1, calls[:])
	frames := runtime.CallersFrames(calls[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function != `` {
			stack = append(stack, frame.Function+`:`+strconv.Itoa(frame.Line))
		}
		if !more {
			break
		}
	}
	return evt.Strs(`stack`, stack)
}
