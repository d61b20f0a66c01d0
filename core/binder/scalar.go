package binder

// BindScalar binds the raw value stored under spec.Name to a typed value.
//
// Policy:
//   - absent or empty with a default: the converted default, whatever Required says
//   - absent, required, no default: *MissingParameterError
//   - string kind, present but empty: "" (Required only gates presence of the key)
//   - other kinds treat an empty value as absent
//   - present but not convertible: *TypeConversionError
//   - absent and optional: nil
//
// Multi specs return a slice of the kind's Go type ([]string, []int, ...).
// The spec is validated on every call; use a Schema to validate once at setup time.
func BindScalar(raw Values, spec Spec) (any, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return bindScalar(raw, spec)
}

func bindScalar(raw Values, spec Spec) (any, error) {
	if spec.Multi {
		return bindMulti(raw, spec)
	}

	value, present := raw.Get(spec.Name)

	if (!present || value == "") && spec.Default != nil {
		v, err := convert(spec.Kind, *spec.Default)
		if err != nil {
			return nil, &TypeConversionError{Name: spec.Name, Kind: spec.Kind, Value: *spec.Default, Err: err}
		}
		return v, nil
	}

	if spec.Kind == String && present {
		return value, nil
	}

	if !present || value == "" {
		if spec.Required {
			return nil, &MissingParameterError{Name: spec.Name, Kind: spec.Kind}
		}
		return nil, nil
	}

	v, err := convert(spec.Kind, value)
	if err != nil {
		return nil, &TypeConversionError{Name: spec.Name, Kind: spec.Kind, Value: value, Err: err}
	}
	return v, nil
}

func bindMulti(raw Values, spec Spec) (any, error) {
	present := len(raw[spec.Name]) > 0
	parts := splitValues(raw[spec.Name])

	if len(parts) == 0 {
		switch {
		case spec.Default != nil:
			return convertSlice(spec, spec.defaultParts())
		case !present && spec.Required:
			return nil, &MissingParameterError{Name: spec.Name, Kind: spec.Kind}
		case !present:
			return nil, nil
		}
		return convertSlice(spec, []string{})
	}

	return convertSlice(spec, parts)
}

// BindMap copies the first value of every raw key into an Object without any coercion.
// Keys that carry no values are left out. It never fails.
func BindMap(raw Values) Object {
	out := make(Object, len(raw))
	for key, vals := range raw {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// BindMultiMap returns a deep copy of every raw key with all of its values.
func BindMultiMap(raw Values) map[string][]string {
	return NewValues(raw)
}
