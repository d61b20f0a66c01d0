package binder

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/elnormous/contenttype"
)

const (
	// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
	DefaultMaxMemory = 10 << 20 // 10 MB

	// DefaultMaxBodySize caps url-encoded and raw text bodies (1MB).
	DefaultMaxBodySize = 1 << 20 // 1 MB
)

var (
	formMediaType      = contenttype.NewMediaType("application/x-www-form-urlencoded")
	multipartMediaType = contenttype.NewMediaType("multipart/form-data")
)

// FromRequest returns the request parameters: the query string followed by
// any application/x-www-form-urlencoded or multipart/form-data body fields.
// Query values come first under each name so that Values.Get prefers them.
// Bodies of other media types are not parameters and are left unread.
//
// The url-encoded body is restored after reading so handlers can still inspect it.
//
// Example:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		raw, err := binder.FromRequest(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		obj, err := helloSchema.Bind(raw)
//		// ...
//	}
func FromRequest(r *http.Request) (Values, error) {
	values := Query(r)

	if r.Body == nil || r.Body == http.NoBody || r.Header.Get("Content-Type") == "" {
		return values, nil
	}

	mediaType, err := contenttype.GetMediaType(r)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type: %v", ErrFailedToParseForm, err)
	}

	switch {
	case mediaType.Matches(formMediaType):
		body, err := readBody(r, DefaultMaxBodySize)
		if err != nil {
			return nil, err
		}
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return values.merge(form), nil

	case mediaType.Matches(multipartMediaType):
		// Parse and validate boundary parameter to prevent malformed multipart attacks
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
		}
		if !validateBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
		}

		// Larger files spill to disk; cleanup is left to the caller
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		if r.MultipartForm == nil {
			return values, nil
		}
		return values.merge(r.MultipartForm.Value), nil
	}

	return values, nil
}

// readBody reads at most limit bytes and puts an equivalent reader back on the request.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	// Read one extra byte to detect oversized requests
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadBody, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToReadBody, limit)
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// validateBoundary performs security validation on multipart form boundaries.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}
