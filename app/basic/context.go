package basic

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/router"
)

// Context is the per-request context handed to the demo handlers.
type Context struct {
	*router.Context

	logger *slog.Logger
	params binder.Values
}

// Logger returns the application logger.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Params returns query and form parameters, parsed once per request.
func (c *Context) Params() (binder.Values, error) {
	if c.params != nil {
		return c.params, nil
	}
	params, err := binder.FromRequest(c.Request())
	if err != nil {
		return nil, err
	}
	c.params = params
	return params, nil
}

func contextFactory(logger *slog.Logger) func(http.ResponseWriter, *http.Request, map[string]string) *Context {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
		return &Context{
			Context: router.NewContext(w, r, params),
			logger:  logger,
		}
	}
}
