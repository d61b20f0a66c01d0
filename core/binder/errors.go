package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// Error variables define common binding failures that can occur during request processing.
var (
	// ErrMissingParameter indicates a required parameter is absent and no default is declared.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrTypeConversion indicates a raw value could not be converted to the declared kind.
	ErrTypeConversion = errors.New("type conversion failed")

	// ErrUnsupportedType indicates a spec declares a kind the binder cannot convert.
	// It is a programming error and should surface at setup time.
	ErrUnsupportedType = errors.New("unsupported parameter type")

	// ErrInvalidSpec indicates a malformed parameter spec or field table.
	ErrInvalidSpec = errors.New("invalid parameter spec")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// that the adapter doesn't support (e.g., text/plain for the JSON adapter).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or is not a flat JSON object.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseForm indicates form data parsing failed due to malformed
	// multipart boundaries or invalid URL-encoded data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrFailedToReadBody indicates the request body could not be read or exceeded the size limit.
	ErrFailedToReadBody = errors.New("failed to read request body")

	// ErrUnsupportedCharset indicates the Content-Type charset parameter names an unknown encoding.
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

// MissingParameterError reports a required parameter that is absent with no default available.
type MissingParameterError struct {
	Name string
	Kind Kind
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrMissingParameter, e.Name, e.Kind)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }

// StatusCode makes the error render as 400 Bad Request.
func (e *MissingParameterError) StatusCode() int { return http.StatusBadRequest }

// TypeConversionError reports a raw value that is present but not convertible to the declared kind.
type TypeConversionError struct {
	Name  string
	Kind  Kind
	Value string
	Err   error
}

func (e *TypeConversionError) Error() string {
	msg := fmt.Sprintf("%s: field %q: cannot convert %q to %s", ErrTypeConversion, e.Name, e.Value, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying parse error.
func (e *TypeConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeConversion}
	}
	return []error{ErrTypeConversion, e.Err}
}

// StatusCode makes the error render as 400 Bad Request.
func (e *TypeConversionError) StatusCode() int { return http.StatusBadRequest }

// UnsupportedTypeError reports a spec whose kind has no converter.
type UnsupportedTypeError struct {
	Name string
	Kind Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", ErrUnsupportedType, e.Name, e.Kind)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// StatusCode reports a server-side misconfiguration.
func (e *UnsupportedTypeError) StatusCode() int { return http.StatusInternalServerError }

// SpecError reports a parameter spec rejected at setup time.
type SpecError struct {
	Name   string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidSpec, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrInvalidSpec, e.Name, e.Reason)
}

func (e *SpecError) Unwrap() error { return ErrInvalidSpec }

// StatusCode reports a server-side misconfiguration.
func (e *SpecError) StatusCode() int { return http.StatusInternalServerError }
