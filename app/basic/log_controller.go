package basic

import (
	"log/slog"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/logger"
	"github.com/dmitrymomot/bindkit/core/response"
)

// logTest writes one record per level; the configured level decides which appear.
func logTest(ctx *Context) handler.Response {
	name := slog.String("name", "Spring")
	log := ctx.Logger()

	logger.Trace(ctx, log, "trace log", name)
	log.DebugContext(ctx, "debug log", name)
	log.InfoContext(ctx, "info log", name)
	log.WarnContext(ctx, "warn log", name)
	log.ErrorContext(ctx, "error log", name)

	return response.String("OK")
}
