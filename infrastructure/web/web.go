// Package web contains a small web framework extension over net/http.
// Handlers return an Encoder instead of writing to the ResponseWriter
// directly; Respond turns the Encoder into the wire response.
package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Encoder defines behavior that can encode a data model and provide the
// content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

// HandlerFunc represents a function that handles a http request within our
// own little mini framework.
type HandlerFunc func(ctx context.Context, r *http.Request) Encoder

// Middleware wraps a HandlerFunc with pre/post processing.
type Middleware func(HandlerFunc) HandlerFunc

// Telemetry represents the trace ID support handlers rely on.
type Telemetry interface {
	SetTraceID(ctx context.Context) context.Context
	GetTraceID(ctx context.Context) string
}

// WebHandler is the entrypoint into our application and what configures the
// context object for each of our http handlers.
type WebHandler struct {
	mux       *http.ServeMux
	log       *logger.Logger
	telemetry Telemetry

	globalMiddleware []Middleware
	defaultHeaders   map[string]string
}

// HandlerOption configures a WebHandler.
type HandlerOption func(*WebHandler)

// WithTelemetry sets the telemetry provider.
func WithTelemetry(tel Telemetry) HandlerOption {
	return func(wh *WebHandler) {
		wh.telemetry = tel
	}
}

// WithGlobalMiddleware appends middleware applied to every handled route.
func WithGlobalMiddleware(middleware ...Middleware) HandlerOption {
	return func(wh *WebHandler) {
		wh.globalMiddleware = append(wh.globalMiddleware, middleware...)
	}
}

// WithDefaultHeaders sets headers written on every response.
func WithDefaultHeaders(headers map[string]string) HandlerOption {
	return func(wh *WebHandler) {
		for k, v := range headers {
			wh.defaultHeaders[k] = v
		}
	}
}

// NewWebHandler creates a WebHandler value that handles a set of routes for
// the application.
func NewWebHandler(log *logger.Logger, opts ...HandlerOption) *WebHandler {
	wh := &WebHandler{
		mux:            http.NewServeMux(),
		log:            log,
		defaultHeaders: make(map[string]string),
	}

	for _, opt := range opts {
		opt(wh)
	}

	return wh
}

// Handle registers a handler for the method and path, wrapping it with the
// global middleware chain plus any route-specific middleware.
func (wh *WebHandler) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	finalHandler := wh.buildHandlerChain(handler, middleware...)

	httpHandler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if wh.telemetry != nil {
			ctx = wh.telemetry.SetTraceID(ctx)
			w.Header().Set("X-Trace-Id", wh.telemetry.GetTraceID(ctx))
		}
		ctx = setWriter(ctx, w)

		for k, v := range wh.defaultHeaders {
			w.Header().Set(k, v)
		}

		resp := finalHandler(ctx, r)

		if err := Respond(ctx, w, resp); err != nil && wh.log != nil {
			wh.log.ErrorContext(ctx, "web-respond", "err", err)
		}
	}

	pattern := fmt.Sprintf("%s %s", strings.ToUpper(method), path)
	wh.mux.HandleFunc(pattern, httpHandler)
}

// HandleRaw registers a plain http.Handler. Global middleware is not applied.
func (wh *WebHandler) HandleRaw(pattern string, handler http.Handler) {
	wh.mux.Handle(pattern, handler)
}

// ServeHTTP implements the http.Handler interface.
func (wh *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wh.mux.ServeHTTP(w, r)
}

func (wh *WebHandler) buildHandlerChain(handler HandlerFunc, middleware ...Middleware) HandlerFunc {
	allMiddleware := append(append([]Middleware{}, wh.globalMiddleware...), middleware...)

	final := handler
	for i := len(allMiddleware) - 1; i >= 0; i-- {
		final = allMiddleware[i](final)
	}

	return final
}
