package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/elnormous/contenttype"
	"golang.org/x/text/encoding/htmlindex"
)

// Text reads the whole request body as a string.
//
// The body is decoded from the charset named in the Content-Type header
// (for example "text/plain; charset=ISO-8859-1") to UTF-8. Without a charset
// the body is taken as UTF-8. Bodies over DefaultMaxBodySize are rejected.
//
// Example:
//
//	func echo(w http.ResponseWriter, r *http.Request) {
//		body, err := binder.Text(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		fmt.Fprint(w, body)
//	}
func Text(r *http.Request) (string, error) {
	body, err := readBody(r, DefaultMaxBodySize)
	if err != nil {
		return "", err
	}

	charset := requestCharset(r)
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return string(body), nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadBody, err)
	}
	return string(decoded), nil
}

// requestCharset returns the charset parameter of the Content-Type header, if any.
func requestCharset(r *http.Request) string {
	if r.Header.Get("Content-Type") == "" {
		return ""
	}
	mediaType, err := contenttype.GetMediaType(r)
	if err != nil {
		return ""
	}
	for key, value := range mediaType.Parameters {
		if strings.EqualFold(key, "charset") {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}
