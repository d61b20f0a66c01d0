// Package logger builds slog loggers and provides attribute helpers for
// consistent structured logs.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("basic"),
//		logger.WithContextValue("request_id", middleware.RequestIDKey{}),
//	)
//	log.Info("server starting", logger.Component("server"), logger.Event("startup"))
//
// WithDevelopment selects text output at debug level, WithProduction JSON at
// info level. Individual options override either preset when passed after it.
//
// # Levels
//
// LevelTrace sits below slog.LevelDebug and prints as "TRACE". ParseLevel
// reads level names from configuration:
//
//	level, err := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
//
// # Context Values
//
// WithContextValue and WithContextExtractors copy request-scoped values into
// every record logged through the *Context methods (InfoContext, ...).
//
// # Attribute Helpers
//
// Helpers such as Error, RequestID and Query return an empty slog.Attr for
// zero input, which slog drops, so callers need no nil checks:
//
//	log.Error("bind failed", logger.Error(err), logger.Path(r.URL.Path))
package logger
