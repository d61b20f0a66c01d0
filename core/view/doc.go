// Package view resolves logical view names to templ components.
//
// A handler picks a view by name and supplies a Model; the registry maps the
// name to a Template that turns the model into a templ.Component:
//
//	reg := view.NewRegistry()
//	reg.MustRegister("response/hello", views.Hello)
//
//	mav := view.New("response/hello").AddObject("data", "hello!")
//	return response.View(reg, mav)
//
// NameFromPath derives a view name from a request path the way
// "/response/hello" maps to "response/hello", for handlers that render the
// view matching their own route.
package view
