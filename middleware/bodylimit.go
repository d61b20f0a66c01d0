package middleware

import (
	"fmt"
	"net/http"

	"github.com/elnormous/contenttype"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/response"
)

// Common size constants for convenience
const (
	KB int64 = 1024
	MB       = 1024 * KB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// MaxSize is the maximum allowed size in bytes (default: 4MB)
	MaxSize int64

	// ContentTypeLimit overrides MaxSize per media type,
	// e.g. {"application/json": 64 * KB}
	ContentTypeLimit map[string]int64
}

// BodyLimit creates a body limit middleware with the 4MB default.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize[C handler.Context](maxSize int64) handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig rejects requests whose declared Content-Length is over
// the limit and caps the body reader for the rest. Binders reading past the
// cap fail with an *http.MaxBytesError, which the response error handlers
// turn into 413.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 4 * MB
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			limit := cfg.MaxSize
			if mt, err := contenttype.GetMediaType(req); err == nil {
				if l, ok := cfg.ContentTypeLimit[mt.Type+"/"+mt.Subtype]; ok {
					limit = l
				}
			}

			if req.ContentLength > limit {
				return response.Error(response.ErrRequestEntityTooLarge.
					WithMessage(fmt.Sprintf("Request body too large. Size: %d bytes, Maximum allowed: %d bytes", req.ContentLength, limit)).
					WithDetails(map[string]any{"limit": limit, "size": req.ContentLength}))
			}

			if req.Body != nil && req.Body != http.NoBody {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, limit)
			}
			return next(ctx)
		}
	}
}
