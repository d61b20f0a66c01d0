// Package handler defines the request-handling contracts shared by the router,
// the response helpers and the middleware packages.
package handler

import (
	"context"
	"net/http"
)

// Context is the per-request value handed to every handler.
// It is itself a context.Context bound to the request's lifetime.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Param returns a path wildcard value, or "" when the route has none by that name.
	Param(key string) string
	// SetValue stores a request-scoped value readable through Value.
	SetValue(key, val any)
}

// Response writes headers, status and body.
// A returned error goes to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a request and returns the response to render.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors returned by handlers or responses.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting behaviour.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
