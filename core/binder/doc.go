// Package binder maps untyped request data onto typed values with explicit,
// declarative field tables instead of struct-tag reflection.
//
// # Features
//
//   - Scalar binding with required/optional semantics and default substitution
//   - Verbatim map binding (first value or all values per key)
//   - Object binding over an explicit field table, reporting every failing field
//   - Typed struct population through explicit setters (Model)
//   - Request adapters for query strings, url-encoded and multipart forms,
//     flat JSON objects and raw text bodies with charset decoding
//   - Typed errors carrying field name, kind and offending value
//
// # Usage
//
// Raw request data is a Values map. Build it from a request once and pass it
// explicitly to whatever needs it:
//
//	import "github.com/dmitrymomot/bindkit/core/binder"
//
//	raw, err := binder.FromRequest(r) // query + form body
//	raw := binder.Query(r)            // query string only
//	raw, err := binder.JSON(r)        // flat JSON object body
//
// # Scalar Binding
//
// A Spec declares one parameter:
//
//	age, err := binder.BindScalar(raw, binder.Spec{
//		Name:     "age",
//		Kind:     binder.Int,
//		Required: true,
//		Default:  binder.Default("-1"),
//	})
//
// The policy is fixed:
//
//   - A default is used whenever the raw value is absent or empty, whatever Required says.
//   - A required parameter that is absent without a default fails with *MissingParameterError.
//   - A present but empty string satisfies Required and binds to "".
//   - Non-string kinds treat an empty value as absent.
//   - A value that does not convert fails with *TypeConversionError. Integers are
//     parsed base 10 and overflow is an error.
//   - An optional non-string parameter must declare a Default or be Nullable.
//     Otherwise the spec itself is invalid (ErrInvalidSpec): an absent value is
//     never silently turned into zero.
//
// # Schemas
//
// Field tables are validated once, typically at route registration:
//
//	var helloSchema = binder.MustSchema(
//		binder.Spec{Name: "username", Kind: binder.String, Required: true},
//		binder.Spec{Name: "age", Kind: binder.Int, Required: true},
//	)
//
//	obj, err := helloSchema.Bind(raw)
//	username, _ := obj.String("username")
//	age, _ := obj.Int("age")
//
// When several fields fail, the error joins each failure in declaration order;
// use errors.As to reach a specific *MissingParameterError or *TypeConversionError.
//
// # Models
//
// Model populates a struct through setters declared next to the field table:
//
//	type HelloData struct {
//		Username string
//		Age      int
//	}
//
//	var helloModel = binder.MustModel(
//		binder.StringAttr(binder.Spec{Name: "username"}, func(d *HelloData, v string) { d.Username = v }),
//		binder.IntAttr(binder.Spec{Name: "age", Nullable: true}, func(d *HelloData, v int) { d.Age = v }),
//	)
//
//	var data HelloData
//	if err := helloModel.Bind(raw, &data); err != nil {
//		// ...
//	}
//
// # Textual Specs
//
// ParseSpec reads the compact form used by configuration and the CLI:
//
//	spec, err := binder.ParseSpec("tags:string:multi:default=a,b")
//
// # Error Handling
//
// Every error wraps a package sentinel and the binding errors implement
// StatusCode() so the response error handlers map them to HTTP statuses:
//
//	switch {
//	case errors.Is(err, binder.ErrMissingParameter): // 400
//	case errors.Is(err, binder.ErrTypeConversion):   // 400
//	case errors.Is(err, binder.ErrUnsupportedType):  // 500, configuration bug
//	case errors.Is(err, binder.ErrInvalidSpec):      // 500, configuration bug
//	}
//
// Binding is pure: nothing in this package keeps state between calls, and
// Schema and Model values may be shared across goroutines.
package binder
