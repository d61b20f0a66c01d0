package basic

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/logger"
	"github.com/dmitrymomot/bindkit/core/response"
)

var (
	// username and age, both required
	helloParams = binder.MustSchema(
		binder.Spec{Name: "username", Kind: binder.String, Required: true},
		binder.Spec{Name: "age", Kind: binder.Int, Required: true},
	)

	requiredParams = binder.MustSchema(
		binder.Spec{Name: "username", Kind: binder.String, Required: true},
		binder.Spec{Name: "age", Kind: binder.Int, Nullable: true},
	)

	defaultParams = binder.MustSchema(
		binder.Spec{Name: "username", Kind: binder.String, Required: true, Default: binder.Default("guest")},
		binder.Spec{Name: "age", Kind: binder.Int, Default: binder.Default("-1")},
	)
)

// requestParamV1 reads the raw values by hand and writes the body directly.
func requestParamV1(ctx *Context) handler.Response {
	params, err := ctx.Params()
	if err != nil {
		return response.Error(err)
	}

	username, _ := params.Get("username")
	rawAge, _ := params.Get("age")
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		return response.Error(&binder.TypeConversionError{Name: "age", Kind: binder.Int, Value: rawAge, Err: err})
	}

	ctx.Logger().InfoContext(ctx, "request param", logger.Event("request_param"), slog.String("username", username), slog.Int("age", age))

	return func(w http.ResponseWriter, r *http.Request) error {
		_, err := w.Write([]byte("ok"))
		return err
	}
}

func requestParamV2(ctx *Context) handler.Response {
	return bindAndLog(ctx, helloParams)
}

func requestParamV3(ctx *Context) handler.Response {
	return bindAndLog(ctx, helloParams)
}

func requestParamV4(ctx *Context) handler.Response {
	return bindAndLog(ctx, helloParams)
}

// requestParamRequired accepts an empty username and a missing age.
func requestParamRequired(ctx *Context) handler.Response {
	return bindAndLog(ctx, requiredParams)
}

// requestParamDefault falls back to guest and -1 for absent or empty values.
func requestParamDefault(ctx *Context) handler.Response {
	return bindAndLog(ctx, defaultParams)
}

func requestParamMap(ctx *Context) handler.Response {
	params, err := ctx.Params()
	if err != nil {
		return response.Error(err)
	}

	m := binder.BindMap(params)
	ctx.Logger().InfoContext(ctx, "request param map",
		logger.Event("request_param_map"),
		slog.Any("username", m["username"]),
		slog.Any("age", m["age"]),
	)
	return response.String("ok")
}

func modelAttributeV1(ctx *Context) handler.Response {
	return bindHello(ctx, "OK")
}

func modelAttributeV2(ctx *Context) handler.Response {
	return bindHello(ctx, "ok")
}

func bindAndLog(ctx *Context, schema *binder.Schema) handler.Response {
	params, err := ctx.Params()
	if err != nil {
		return response.Error(err)
	}

	obj, err := schema.Bind(params)
	if err != nil {
		return response.Error(err)
	}

	username, _ := obj.String("username")
	attrs := []any{logger.Event("request_param"), slog.String("username", username)}
	if age, ok := obj.Int("age"); ok {
		attrs = append(attrs, slog.Int("age", age))
	} else {
		attrs = append(attrs, slog.Any("age", nil))
	}
	ctx.Logger().InfoContext(ctx, "request param", attrs...)

	return response.String("ok")
}

func bindHello(ctx *Context, reply string) handler.Response {
	params, err := ctx.Params()
	if err != nil {
		return response.Error(err)
	}

	var data HelloData
	if err := helloModel.Bind(params, &data); err != nil {
		return response.Error(err)
	}

	ctx.Logger().InfoContext(ctx, "model attribute", logger.Event("model_attribute"), slog.String("username", data.Username), slog.Int("age", data.Age))
	return response.String(reply)
}
