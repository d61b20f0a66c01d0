package binder

import (
	"strconv"
	"strings"
)

// convert turns a single raw string into the Go value for kind.
// Integers are parsed base 10 at the kind's width, so overflow is an error.
func convert(kind Kind, value string) (any, error) {
	switch kind {
	case String:
		return value, nil

	case Int:
		n, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return int(n), nil

	case Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil

	case Float64:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		return n, nil

	case Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Accept common HTML form representations for checkboxes
			switch strings.ToLower(value) {
			case "on", "yes":
				return true, nil
			case "off", "no":
				return false, nil
			}
			return nil, err
		}
		return b, nil
	}

	return nil, &UnsupportedTypeError{Kind: kind}
}

// convertSlice converts every element and returns a typed slice for kind.
func convertSlice(spec Spec, values []string) (any, error) {
	var (
		out any
		err error
	)

	switch spec.Kind {
	case String:
		return values, nil
	case Int:
		out, err = convertEach[int](spec, values)
	case Int64:
		out, err = convertEach[int64](spec, values)
	case Float64:
		out, err = convertEach[float64](spec, values)
	case Bool:
		out, err = convertEach[bool](spec, values)
	default:
		return nil, &UnsupportedTypeError{Name: spec.Name, Kind: spec.Kind}
	}

	if err != nil {
		return nil, err
	}
	return out, nil
}

func convertEach[T any](spec Spec, values []string) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, value := range values {
		v, err := convert(spec.Kind, value)
		if err != nil {
			return nil, &TypeConversionError{Name: spec.Name, Kind: spec.Kind, Value: value, Err: err}
		}
		out = append(out, v.(T))
	}
	return out, nil
}

// splitValues flattens repeated parameters and comma-separated values into one list.
// Empty elements are dropped.
func splitValues(values []string) []string {
	var all []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				all = append(all, part)
			}
		}
	}
	return all
}
