package basic

import (
	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/response"
	"github.com/dmitrymomot/bindkit/core/view"
)

// responseViewV1 returns a model and view in one value.
func responseViewV1(views *view.Registry) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		mav := view.New(HelloView).AddObject("data", "hello!")
		return response.View(views, mav)
	}
}

// responseViewV2 fills a model and names the view.
func responseViewV2(views *view.Registry) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		model := view.NewModel().AddAttribute("data", "hello!!")
		return response.ViewName(views, HelloView, model)
	}
}

// responseViewV3 takes the view name from the request path.
func responseViewV3(views *view.Registry) handler.HandlerFunc[*Context] {
	return func(ctx *Context) handler.Response {
		model := view.NewModel().AddAttribute("data", "hello!!")
		return response.ViewName(views, view.NameFromPath(ctx.Request().URL.Path), model)
	}
}
