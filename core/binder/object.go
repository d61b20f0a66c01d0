package binder

import (
	"errors"
	"fmt"
)

// Object is a flat mapping from field name to bound value.
// Absent optional fields do not appear.
type Object map[string]any

// Has reports whether name was bound.
func (o Object) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns the string bound under name.
func (o Object) String(name string) (string, bool) { return lookup[string](o, name) }

// Int returns the int bound under name.
func (o Object) Int(name string) (int, bool) { return lookup[int](o, name) }

// Int64 returns the int64 bound under name.
func (o Object) Int64(name string) (int64, bool) { return lookup[int64](o, name) }

// Float64 returns the float64 bound under name.
func (o Object) Float64(name string) (float64, bool) { return lookup[float64](o, name) }

// Bool returns the bool bound under name.
func (o Object) Bool(name string) (bool, bool) { return lookup[bool](o, name) }

// Strings returns the []string bound under a multi spec.
func (o Object) Strings(name string) ([]string, bool) { return lookup[[]string](o, name) }

// Ints returns the []int bound under a multi spec.
func (o Object) Ints(name string) ([]int, bool) { return lookup[[]int](o, name) }

func lookup[T any](o Object, name string) (T, bool) {
	v, ok := o[name].(T)
	return v, ok
}

// BindObject binds every declared field against raw and collects the results.
// Raw keys without a matching field are ignored.
// When any field fails, the returned error joins every field failure in
// declaration order and the Object is nil.
func BindObject(raw Values, fields []Spec) (Object, error) {
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}
	return bindObject(raw, fields)
}

func bindObject(raw Values, fields []Spec) (Object, error) {
	out := make(Object, len(fields))
	var errs []error

	for _, f := range fields {
		v, err := bindScalar(raw, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v != nil {
			out[f.Name] = v
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Schema is a field table validated once at construction.
// It is immutable and safe for concurrent use.
type Schema struct {
	fields []Spec
}

// NewSchema validates fields and returns a Schema binding them in order.
// Duplicate names, unsupported kinds, defaults that do not convert and
// optional primitives without a default are all rejected here.
func NewSchema(fields ...Spec) (*Schema, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[f.Name]; dup {
			return nil, &SpecError{Name: f.Name, Reason: "duplicate field"}
		}
		seen[f.Name] = struct{}{}
	}

	return &Schema{fields: append([]Spec(nil), fields...)}, nil
}

// MustSchema is like NewSchema but panics on error. Intended for package-level tables.
func MustSchema(fields ...Spec) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("binder: %v", err))
	}
	return s
}

// Fields returns a copy of the schema's field table.
func (s *Schema) Fields() []Spec {
	return append([]Spec(nil), s.fields...)
}

// Bind binds raw against the schema. See BindObject.
func (s *Schema) Bind(raw Values) (Object, error) {
	return bindObject(raw, s.fields)
}
