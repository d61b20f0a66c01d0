package response

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/view"
)

// ViewRenderer turns a view name and model into a component; *view.Registry implements it.
type ViewRenderer interface {
	Render(name string, model view.Model) (templ.Component, error)
}

// View renders a ModelAndView through the renderer.
// An unknown view name is a server-side error.
func View(renderer ViewRenderer, mav *view.ModelAndView) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if mav == nil {
			return fmt.Errorf("%w: nil model and view", view.ErrViewNotFound)
		}
		component, err := renderer.Render(mav.ViewName(), mav.Model())
		if err != nil {
			return err
		}
		return TemplWithStatus(component, mav.Status())(w, r)
	}
}

// ViewName renders the named view with model.
func ViewName(renderer ViewRenderer, name string, model view.Model) handler.Response {
	return View(renderer, view.WithModel(name, model))
}
