package binder

import (
	"maps"
	"slices"
)

// Values is the decoded, untyped request data: field name to one or more string values.
// It represents query-string and form-body parameters after percent and charset decoding.
// The binder never mutates a Values it is given.
type Values map[string][]string

// NewValues returns a Values holding a deep copy of src.
func NewValues(src map[string][]string) Values {
	v := make(Values, len(src))
	for key, vals := range src {
		v[key] = slices.Clone(vals)
	}
	return v
}

// Get returns the first value for name and whether the key is present at all.
// A present key with an empty value slice reports ok=false.
func (v Values) Get(name string) (string, bool) {
	vals, ok := v[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// All returns a copy of every value stored under name.
func (v Values) All(name string) []string {
	return slices.Clone(v[name])
}

// Has reports whether name is present.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Keys returns the parameter names in sorted order.
func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// merge returns a new Values with the entries of other appended after those of v.
func (v Values) merge(other map[string][]string) Values {
	out := NewValues(v)
	for key, vals := range other {
		out[key] = append(out[key], vals...)
	}
	return out
}
