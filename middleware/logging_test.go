package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/logger"
	"github.com/dmitrymomot/bindkit/core/response"
	"github.com/dmitrymomot/bindkit/core/router"
	"github.com/dmitrymomot/bindkit/middleware"
)

func newAccessLogRouter(t *testing.T, cfg middleware.LoggingConfig) (router.Router[*router.Context], *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg.Logger = logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))

	r := router.New[*router.Context](router.WithErrorHandler(response.ErrorHandler[*router.Context]))
	r.Use(middleware.RequestID[*router.Context]())
	r.Use(middleware.LoggingWithConfig[*router.Context](cfg))
	return r, &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[0], "expected a log record")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &rec))
	return rec
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	r, buf := newAccessLogRouter(t, middleware.LoggingConfig{})
	r.Get("/hello", func(ctx *router.Context) handler.Response {
		return response.String("hello")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hello?name=go", nil)
	req.Header.Set("User-Agent", "curl/8.0")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	rec := lastRecord(t, buf)
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "http request", rec["msg"])
	assert.Equal(t, "http", rec["component"])
	assert.Equal(t, http.MethodGet, rec["method"])
	assert.Equal(t, "/hello", rec["path"])
	assert.Equal(t, "name=go", rec["query"])
	assert.Equal(t, "curl/8.0", rec["user_agent"])
	assert.Equal(t, float64(http.StatusOK), rec["status_code"])
	assert.Equal(t, float64(len("hello")), rec["bytes_out"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), rec["request_id"])
}

func TestLoggingMiddlewareErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{name: "client error", err: response.ErrNotFound, status: http.StatusNotFound, level: "WARN"},
		{name: "plain error", err: errors.New("boom"), status: http.StatusInternalServerError, level: "ERROR"},
		{name: "malformed json", err: fmt.Errorf("%w: unexpected EOF", binder.ErrFailedToParseJSON), status: http.StatusBadRequest, level: "WARN"},
		{name: "media type", err: binder.ErrUnsupportedMediaType, status: http.StatusUnsupportedMediaType, level: "WARN"},
		{name: "body too large", err: &http.MaxBytesError{Limit: 4}, status: http.StatusRequestEntityTooLarge, level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, buf := newAccessLogRouter(t, middleware.LoggingConfig{})
			r.Get("/fail", func(ctx *router.Context) handler.Response {
				return response.Error(tt.err)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
			assert.Equal(t, tt.status, w.Code)

			rec := lastRecord(t, buf)
			assert.Equal(t, tt.level, rec["level"])
			assert.Equal(t, float64(tt.status), rec["status_code"])
			assert.NotEmpty(t, rec["error"])
		})
	}
}

func TestLoggingMiddlewareRequestBodyAndHeaders(t *testing.T) {
	t.Parallel()

	r, buf := newAccessLogRouter(t, middleware.LoggingConfig{
		LogRequestBody: true,
		LogHeaders:     true,
		MaxBodyLogSize: 5,
	})
	r.Post("/echo", func(ctx *router.Context) handler.Response {
		var body bytes.Buffer
		_, _ = body.ReadFrom(ctx.Request().Body)
		return response.String(body.String())
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hello world"))
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("X-Custom", "visible")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "hello world", w.Body.String(), "body is restored for the handler")

	rec := lastRecord(t, buf)
	assert.Equal(t, "hello", rec["request_body"])
	assert.Equal(t, true, rec["request_body_truncated"])

	headers, ok := rec["request_headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "visible", headers["X-Custom"])
}

func TestLoggingMiddlewareSkip(t *testing.T) {
	t.Parallel()

	r, buf := newAccessLogRouter(t, middleware.LoggingConfig{
		Skip: func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/health" },
	})
	r.Get("/health", func(ctx *router.Context) handler.Response {
		return response.String("ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, buf.String())
}
