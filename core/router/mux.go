package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/bindkit/core/handler"
)

// methods lists the verbs tried when building the Allow header.
var methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// routeTable is shared by a router and its inline groups.
type routeTable struct {
	mu       sync.Mutex
	serveMux *http.ServeMux
	routes   []Route
}

// mux is the private implementation of Router interface.
type mux[C handler.Context] struct {
	table        *routeTable
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	parent       *mux[C] // for inline groups
	inline       bool
	hasRoutes    bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		table:        &routeTable{serveMux: http.NewServeMux()},
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			// Only the default *Context type works without a factory
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler interface.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	root := m.root()
	ww := newResponseWriter(w)

	if _, pattern := root.table.serveMux.Handler(r); pattern != "" {
		root.table.serveMux.ServeHTTP(ww, r)
		return
	}

	err := ErrNotFound
	if allowed := root.allowedMethods(r); len(allowed) > 0 {
		// Set Allow header per RFC 9110 before responding with 405
		ww.Header().Set("Allow", strings.Join(allowed, ", "))
		err = ErrMethodNotAllowed
	}

	root.dispatch(ww, r, nil, func(C) handler.Response {
		return func(http.ResponseWriter, *http.Request) error { return err }
	})
}

// dispatch runs fn behind the root middleware stack and renders its response.
func (m *mux[C]) dispatch(w http.ResponseWriter, r *http.Request, params []string, fn handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)

	var values map[string]string
	if len(params) > 0 {
		values = make(map[string]string, len(params))
		for _, name := range params {
			values[name] = r.PathValue(name)
		}
	}

	ctx := m.newContext(ww, r, values)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Can't send error response, just log the panic
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	// Values stored through SetValue travel on the context's request
	if err := response(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

// allowedMethods reports the verbs that would match r's path.
func (m *mux[C]) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, method := range methods {
		if method == r.Method {
			continue
		}
		candidate := r.WithContext(r.Context())
		candidate.Method = method
		if _, pattern := m.table.serveMux.Handler(candidate); pattern != "" {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, handler handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, handler)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, handler handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, handler)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, handler handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, handler)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, handler handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, handler)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, handler handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, handler)
}

// Handle registers a handler for all HTTP methods.
func (m *mux[C]) Handle(pattern string, handler handler.HandlerFunc[C]) {
	m.handle("", pattern, handler)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, handler handler.HandlerFunc[C], verbs ...string) {
	if len(verbs) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(verbs))
	for _, method := range verbs {
		method = strings.ToUpper(method)
		if !slices.Contains(methods, method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, handler)
	}
}

// Use appends middleware to the router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.hasRoutes {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates a new inline router with additional middleware.
// Root middlewares still run first, at dispatch time.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		inline:       true,
		parent:       m,
		table:        m.table,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
	}
}

// Group creates a new inline router for grouping routes.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	m.table.mu.Lock()
	defer m.table.mu.Unlock()

	routes := make([]Route, len(m.table.routes))
	copy(routes, m.table.routes)
	return routes
}

func (m *mux[C]) root() *mux[C] {
	curr := m
	for curr.inline && curr.parent != nil {
		curr = curr.parent
	}
	return curr
}

// handle registers fn on the shared ServeMux.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	if !m.inline {
		m.hasRoutes = true
	}

	// Inline routers bake their own middleware chain in at registration
	h := fn
	if m.inline {
		var inlineMiddlewares []handler.Middleware[C]
		for curr := m; curr != nil && curr.inline; curr = curr.parent {
			inlineMiddlewares = append(append([]handler.Middleware[C]{}, curr.middlewares...), inlineMiddlewares...)
		}
		if len(inlineMiddlewares) > 0 {
			h = chain(inlineMiddlewares, fn)
		}
	}

	full := pattern
	if method != "" {
		full = method + " " + pattern
	}

	root := m.root()
	params := wildcardNames(pattern)

	m.table.mu.Lock()
	defer m.table.mu.Unlock()

	m.table.serveMux.HandleFunc(full, func(w http.ResponseWriter, r *http.Request) {
		root.dispatch(w, r, params, h)
	})
	m.table.routes = append(m.table.routes, Route{Method: method, Pattern: pattern})
}

// wildcardNames extracts "{name}" and "{name...}" segment names from a pattern.
func wildcardNames(pattern string) []string {
	var names []string
	for segment := range strings.SplitSeq(pattern, "/") {
		if len(segment) < 3 || segment[0] != '{' || segment[len(segment)-1] != '}' {
			continue
		}
		name := strings.TrimSuffix(segment[1:len(segment)-1], "...")
		if name == "$" || name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// chain builds a single handler from a middleware stack and endpoint.
// The first middleware runs first.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
