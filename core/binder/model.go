package binder

import (
	"errors"
	"fmt"
)

// Attr binds one request parameter to a field of T through an explicit setter.
type Attr[T any] struct {
	Spec Spec
	set  func(dst *T, v any)
}

// StringAttr declares a string field. The spec kind is forced to String.
func StringAttr[T any](spec Spec, set func(dst *T, v string)) Attr[T] {
	spec.Kind, spec.Multi = String, false
	return newAttr(spec, set)
}

// IntAttr declares an int field. The spec kind is forced to Int.
func IntAttr[T any](spec Spec, set func(dst *T, v int)) Attr[T] {
	spec.Kind, spec.Multi = Int, false
	return newAttr(spec, set)
}

// Int64Attr declares an int64 field. The spec kind is forced to Int64.
func Int64Attr[T any](spec Spec, set func(dst *T, v int64)) Attr[T] {
	spec.Kind, spec.Multi = Int64, false
	return newAttr(spec, set)
}

// Float64Attr declares a float64 field. The spec kind is forced to Float64.
func Float64Attr[T any](spec Spec, set func(dst *T, v float64)) Attr[T] {
	spec.Kind, spec.Multi = Float64, false
	return newAttr(spec, set)
}

// BoolAttr declares a bool field. The spec kind is forced to Bool.
func BoolAttr[T any](spec Spec, set func(dst *T, v bool)) Attr[T] {
	spec.Kind, spec.Multi = Bool, false
	return newAttr(spec, set)
}

// StringsAttr declares a multi-valued string field.
func StringsAttr[T any](spec Spec, set func(dst *T, v []string)) Attr[T] {
	spec.Kind, spec.Multi = String, true
	return newAttr(spec, set)
}

// IntsAttr declares a multi-valued int field.
func IntsAttr[T any](spec Spec, set func(dst *T, v []int)) Attr[T] {
	spec.Kind, spec.Multi = Int, true
	return newAttr(spec, set)
}

func newAttr[T, V any](spec Spec, set func(dst *T, v V)) Attr[T] {
	a := Attr[T]{Spec: spec}
	if set != nil {
		a.set = func(dst *T, v any) { set(dst, v.(V)) }
	}
	return a
}

// Model populates a T from request values using an explicit field table.
// It is immutable after construction and safe for concurrent use.
type Model[T any] struct {
	schema *Schema
	attrs  []Attr[T]
}

// NewModel validates the field table and returns a Model.
func NewModel[T any](attrs ...Attr[T]) (*Model[T], error) {
	specs := make([]Spec, 0, len(attrs))
	for _, a := range attrs {
		if a.set == nil {
			return nil, &SpecError{Name: a.Spec.Name, Reason: "nil setter"}
		}
		specs = append(specs, a.Spec)
	}

	schema, err := NewSchema(specs...)
	if err != nil {
		return nil, err
	}

	return &Model[T]{schema: schema, attrs: append([]Attr[T](nil), attrs...)}, nil
}

// MustModel is like NewModel but panics on error.
func MustModel[T any](attrs ...Attr[T]) *Model[T] {
	m, err := NewModel(attrs...)
	if err != nil {
		panic(fmt.Sprintf("binder: %v", err))
	}
	return m
}

// Schema returns the model's underlying field table.
func (m *Model[T]) Schema() *Schema {
	return m.schema
}

// Bind binds raw and applies each bound field to dst.
// Fields absent from the request leave dst untouched. On error dst is not modified.
func (m *Model[T]) Bind(raw Values, dst *T) error {
	if dst == nil {
		return errors.New("binder: nil destination")
	}

	obj, err := m.schema.Bind(raw)
	if err != nil {
		return err
	}

	for _, a := range m.attrs {
		if v, ok := obj[a.Spec.Name]; ok {
			a.set(dst, v)
		}
	}
	return nil
}
