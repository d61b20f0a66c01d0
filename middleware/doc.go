// Package middleware provides HTTP middleware for request IDs, access logging
// and request body limits.
//
// All middleware follows the same pattern:
//   - Generic functions that accept a handler.Context type parameter
//   - Configuration structs with a Skip hook
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//
// # Request ID
//
// RequestID stores an identifier under RequestIDKey and echoes it in the
// X-Request-ID response header. Pair it with the logger to tag handler logs:
//
//	log := logger.New(logger.WithContextValue("request_id", middleware.RequestIDKey{}))
//	r.Use(middleware.RequestID[*router.Context]())
//
// # Logging
//
// Logging writes one record per request after the response has run. Errors
// returned by handlers are logged with the status the error handler will use:
//
//	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
//		Logger:               log,
//		SlowRequestThreshold: 2 * time.Second,
//		Skip: func(ctx handler.Context) bool {
//			return ctx.Request().URL.Path == "/health"
//		},
//	}))
//
// # Body Limit
//
// BodyLimit rejects oversized declared bodies up front and caps the reader
// otherwise, so binder.Text, binder.JSON and binder.FromRequest fail with a
// 413 once the limit is crossed:
//
//	r.Use(middleware.BodyLimitWithConfig[*router.Context](middleware.BodyLimitConfig{
//		MaxSize:          1 * middleware.MB,
//		ContentTypeLimit: map[string]int64{"application/json": 64 * middleware.KB},
//	}))
package middleware
