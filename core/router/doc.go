// Package router provides a generic HTTP router built on net/http.ServeMux.
//
// Handlers receive a typed context and return a handler.Response; errors
// returned while rendering go to a single error handler. Routes use ServeMux
// patterns, so wildcards such as "/users/{id}" are read with ctx.Param("id").
//
// Basic usage:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/hello/{name}", func(ctx *router.Context) handler.Response {
//		return response.String("hello " + ctx.Param("name"))
//	})
//	http.ListenAndServe(":8080", r)
//
// Unmatched paths are reported as ErrNotFound. A path that matches under a
// different method is reported as ErrMethodNotAllowed with the Allow header
// set. Both pass through the root middleware stack, so request IDs and access
// logs cover them too. Panics are recovered and handed to the error handler
// as a PanicError.
package router
