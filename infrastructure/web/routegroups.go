package web

import "strings"

// RouteGroup registers handlers under a shared path prefix and middleware set.
type RouteGroup struct {
	webHandler *WebHandler
	prefix     string
	middleware []Middleware
}

// Group creates a route group rooted at prefix.
func (wh *WebHandler) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: wh,
		prefix:     strings.TrimSuffix(prefix, "/"),
		middleware: middleware,
	}
}

// Handle registers a handler relative to the group prefix.
func (g *RouteGroup) Handle(method, path string, handler HandlerFunc, middleware ...Middleware) {
	allMiddleware := append(append([]Middleware{}, g.middleware...), middleware...)
	g.webHandler.Handle(method, g.prefix+path, handler, allMiddleware...)
}

// Group creates a nested group, combining prefixes and middleware.
func (g *RouteGroup) Group(prefix string, middleware ...Middleware) *RouteGroup {
	return &RouteGroup{
		webHandler: g.webHandler,
		prefix:     g.prefix + strings.TrimSuffix(prefix, "/"),
		middleware: append(append([]Middleware{}, g.middleware...), middleware...),
	}
}
