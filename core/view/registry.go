package view

import (
	"errors"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

var (
	ErrViewNotFound    = errors.New("view not found")
	ErrInvalidViewName = errors.New("invalid view name")
	ErrDuplicateView   = errors.New("view already registered")
)

// Template renders a model as a templ component.
type Template func(model Model) templ.Component

// Registry maps logical view names to templates. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	views map[string]Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]Template)}
}

// Register adds a template under name.
func (r *Registry) Register(name string, tpl Template) error {
	name = strings.Trim(strings.TrimSpace(name), "/")
	if name == "" {
		return ErrInvalidViewName
	}
	if tpl == nil {
		return fmt.Errorf("%w: nil template for %q", ErrInvalidViewName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.views[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateView, name)
	}
	r.views[name] = tpl
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, tpl Template) {
	if err := r.Register(name, tpl); err != nil {
		panic(err)
	}
}

// Resolve looks up the template registered under name.
func (r *Registry) Resolve(name string) (Template, error) {
	key := strings.Trim(name, "/")

	r.mu.RLock()
	tpl, ok := r.views[key]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, name)
	}
	return tpl, nil
}

// Render resolves name and applies the model to it.
func (r *Registry) Render(name string, model Model) (templ.Component, error) {
	tpl, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	if model == nil {
		model = NewModel()
	}
	return tpl(model), nil
}

// Names returns the registered view names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.views))
}

// NameFromPath turns a request path into a view name: leading and trailing
// slashes and a file extension are dropped, so "/response/hello.html"
// becomes "response/hello".
func NameFromPath(p string) string {
	if p == "" {
		return ""
	}
	p = path.Clean("/" + p)
	p = strings.TrimSuffix(p, path.Ext(p))
	return strings.Trim(p, "/")
}
