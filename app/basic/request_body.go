package basic

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/logger"
	"github.com/dmitrymomot/bindkit/core/response"
)

// requestBodyStringV1 decodes the body itself and writes the reply directly.
func requestBodyStringV1(ctx *Context) handler.Response {
	body, err := binder.Text(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	ctx.Logger().InfoContext(ctx, "request body", logger.Event("request_body"), slog.String("message_body", body))

	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := io.WriteString(w, "OK")
		return err
	}
}

// requestBodyStringV2 streams the body from the request inside the response.
func requestBodyStringV2(ctx *Context) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		body, err := binder.Text(r)
		if err != nil {
			return err
		}
		ctx.Logger().InfoContext(r.Context(), "request body", logger.Event("request_body"), slog.String("message_body", body))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err = io.WriteString(w, "ok")
		return err
	}
}

// requestBodyStringV3 answers 201 Created.
func requestBodyStringV3(ctx *Context) handler.Response {
	body, err := binder.Text(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	ctx.Logger().InfoContext(ctx, "request body", logger.Event("request_body"), slog.String("message_body", body))
	return response.StringWithStatus("ok", http.StatusCreated)
}

func requestBodyStringV4(ctx *Context) handler.Response {
	body, err := binder.Text(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	ctx.Logger().InfoContext(ctx, "request body", logger.Event("request_body"), slog.String("message_body", body))
	return response.String("ok")
}

// requestBodyJSONV1 binds a JSON object onto HelloData and echoes it.
func requestBodyJSONV1(ctx *Context) handler.Response {
	raw, err := binder.JSON(ctx.Request())
	if err != nil {
		return response.Error(err)
	}

	var data HelloData
	if err := helloModel.Bind(raw, &data); err != nil {
		return response.Error(err)
	}

	ctx.Logger().InfoContext(ctx, "request body json", logger.Event("request_body_json"), slog.String("username", data.Username), slog.Int("age", data.Age))
	return response.JSON(data)
}
