// Package response provides handler.Response constructors for text, JSON,
// templ components and named views, plus error handlers that turn errors
// into HTTP answers.
//
// # Basic Usage
//
//	r.Get("/hello", func(ctx *router.Context) handler.Response {
//		return response.String("ok")
//	})
//
//	r.Post("/items", func(ctx *router.Context) handler.Response {
//		return response.JSONWithStatus(item, http.StatusCreated)
//	})
//
// # Views
//
// View resolves a view.ModelAndView through a view.Registry and renders the
// resulting templ component:
//
//	return response.View(views, view.New("response/hello").AddObject("data", "hello!"))
//
// Components render into a buffer before anything is written, so a failing
// template still reaches the error handler with a clean response.
//
// # Error Handling
//
// Handlers return response.Error(err) or an HTTPError. ErrorHandler and
// JSONErrorHandler pick the status in this order:
//
//   - an HTTPError anywhere in the chain is used as is
//   - binder.MissingParameterError becomes 400 "missing_parameter"
//   - binder.TypeConversionError becomes 400 "type_mismatch"
//   - malformed bodies become 400 "bad_request", wrong media types 415
//   - any error with a StatusCode() int method uses that status
//   - everything else is 500
//
// Register one of them on the router:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
package response
