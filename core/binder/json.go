package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/elnormous/contenttype"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

var jsonMediaType = contenttype.NewMediaType("application/json")

// JSON decodes a flat JSON object body into Values so it can be bound with the
// same specs as query and form parameters.
//
// Strings pass through, numbers keep their literal text (integral values
// such as 20.0 become "20"), booleans become "true"/"false" and arrays of
// scalars become multiple values. Null, nested objects and nested arrays are
// left out, so a declared field holding one of them binds as absent and
// undeclared ones are ignored.
//
// Example:
//
//	// {"username": "hello", "age": 20}
//	raw, err := binder.JSON(r)
//	if err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
//	var data HelloData
//	err = helloModel.Bind(raw, &data)
func JSON(r *http.Request) (Values, error) {
	// Fail fast if request context is already cancelled to avoid processing doomed requests
	select {
	case <-r.Context().Done():
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, r.Context().Err())
	default:
	}

	if r.Header.Get("Content-Type") == "" {
		return nil, fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
	}

	mediaType, err := contenttype.GetMediaType(r)
	if err != nil || !mediaType.Matches(jsonMediaType) {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
	}

	body, err := readBody(r, DefaultMaxJSONSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var obj map[string]any
	if err := decoder.Decode(&obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	// Verify no trailing data exists after valid JSON to prevent injection attacks
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	values := make(Values, len(obj))
	for key, v := range obj {
		if arr, ok := v.([]any); ok {
			for _, elem := range arr {
				if s, ok := jsonScalar(elem); ok {
					values[key] = append(values[key], s)
				}
			}
			continue
		}
		if s, ok := jsonScalar(v); ok {
			values[key] = []string{s}
		}
	}

	return values, nil
}

// maxExactFloat is the largest magnitude at which every integer is a float64.
const maxExactFloat = 1 << 53

// jsonScalar renders a decoded JSON scalar as text. Nulls, objects and
// nested arrays report false and never reach the binder.
func jsonScalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return jsonNumber(v), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// jsonNumber keeps the literal unless it is an integral value written with a
// fraction or exponent ("20.0", "2e1"), which is rendered as an integer.
func jsonNumber(n json.Number) string {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return lit
	}
	return strconv.FormatInt(int64(f), 10)
}
