package response

import (
	"errors"
	"net/http"

	"github.com/elnormous/contenttype"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError converts any error to an HTTPError
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if bindErr, ok := bindingError(err); ok {
		return bindErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// StatusOf returns the status the error handlers in this package answer err with.
func StatusOf(err error) int {
	return convertToHTTPError(err).Status
}

// bindingError maps binder failures to client-facing errors.
// Spec misconfiguration stays a 500 and is handled by the caller.
func bindingError(err error) (HTTPError, bool) {
	var (
		missing  *binder.MissingParameterError
		mismatch *binder.TypeConversionError
		tooLarge *http.MaxBytesError
		base     HTTPError
	)

	switch {
	case errors.As(err, &tooLarge):
		return ErrRequestEntityTooLarge.WithDetail("limit", tooLarge.Limit), true
	case errors.As(err, &missing):
		base = ErrMissingParameter.WithDetail("parameter", missing.Name)
	case errors.As(err, &mismatch):
		base = ErrTypeMismatch.WithDetail("parameter", mismatch.Name)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		base = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToReadBody),
		errors.Is(err, binder.ErrUnsupportedCharset):
		base = ErrBadRequest
	default:
		return HTTPError{}, false
	}

	base = base.WithMessage(err.Error())
	if _, single := err.(*binder.TypeConversionError); single {
		return base, true
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 1 {
			msgs := make([]string, 0, len(errs))
			for _, e := range errs {
				msgs = append(msgs, e.Error())
			}
			base = base.WithDetail("errors", msgs)
		}
	}
	return base, true
}

// ErrorHandler is the default error handler that returns plain text errors.
// It checks for HTTPError type first, then binding errors, then the statusCode interface, and defaults to 500.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

// errorMediaTypes lists the error formats in preference order for a missing Accept header.
var errorMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("text/plain"),
	contenttype.NewMediaType("application/json"),
}

// NegotiatingErrorHandler answers with JSON when the Accept header prefers it
// and with plain text otherwise.
func NegotiatingErrorHandler[C handler.Context](ctx C, err error) {
	accepted, _, negErr := contenttype.GetAcceptableMediaType(ctx.Request(), errorMediaTypes)
	if negErr == nil && accepted.Subtype == "json" {
		JSONErrorHandler(ctx, err)
		return
	}
	ErrorHandler(ctx, err)
}
