package view

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
)

// Model carries named attributes into a view template.
type Model map[string]any

// NewModel returns an empty model.
func NewModel() Model {
	return Model{}
}

// AddAttribute sets an attribute and returns the model for chaining.
func (m Model) AddAttribute(name string, value any) Model {
	m[name] = value
	return m
}

// Attribute returns the raw attribute value.
func (m Model) Attribute(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Text returns the attribute formatted with fmt.Sprint, or "" when absent.
func (m Model) Text(name string) string {
	v, ok := m[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Names returns attribute names in sorted order.
func (m Model) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// ModelAndView pairs a logical view name with its model.
type ModelAndView struct {
	name   string
	model  Model
	status int
}

// New creates a ModelAndView for the given view name.
func New(name string) *ModelAndView {
	return &ModelAndView{name: name, model: NewModel(), status: http.StatusOK}
}

// WithModel creates a ModelAndView around an existing model.
func WithModel(name string, model Model) *ModelAndView {
	mav := New(name)
	maps.Copy(mav.model, model)
	return mav
}

// AddObject sets a model attribute and returns the ModelAndView for chaining.
func (mav *ModelAndView) AddObject(name string, value any) *ModelAndView {
	mav.model.AddAttribute(name, value)
	return mav
}

// WithStatus overrides the response status, 200 by default.
func (mav *ModelAndView) WithStatus(status int) *ModelAndView {
	mav.status = status
	return mav
}

func (mav *ModelAndView) ViewName() string { return mav.name }
func (mav *ModelAndView) Model() Model     { return mav.model }
func (mav *ModelAndView) Status() int      { return mav.status }
