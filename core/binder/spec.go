package binder

import (
	"fmt"
	"strings"
)

// Kind is the declared type of a binding target.
type Kind int

// Supported kinds. The zero Kind is invalid so that an unset spec never binds silently.
const (
	String Kind = iota + 1
	Int
	Int64
	Float64
	Bool
)

var kindNames = map[Kind]string{
	String:  "string",
	Int:     "int",
	Int64:   "int64",
	Float64: "float64",
	Bool:    "bool",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a kind name ("string", "int", "int64", "float64", "float", "bool") to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "str":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "int64", "long":
		return Int64, nil
	case "float64", "float", "double":
		return Float64, nil
	case "bool", "boolean":
		return Bool, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
}

// Spec describes one bindable parameter or object field.
type Spec struct {
	// Name is the request parameter name.
	Name string
	// Kind is the declared target type.
	Kind Kind
	// Required gates presence of the key. Defaults satisfy it.
	Required bool
	// Default is used when the raw value is absent or empty, regardless of Required.
	Default *string
	// Multi collects every value under Name into a slice.
	Multi bool
	// Nullable lets an absent non-string value bind to nil instead of being rejected.
	Nullable bool
}

// Default returns a pointer to v for use as Spec.Default.
func Default(v string) *string {
	return &v
}

// validate checks a spec for setup-time errors.
func (s Spec) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &SpecError{Reason: "empty parameter name"}
	}
	if !s.Kind.valid() {
		return &UnsupportedTypeError{Name: s.Name, Kind: s.Kind}
	}
	if s.Default != nil {
		for _, part := range s.defaultParts() {
			if _, err := convert(s.Kind, part); err != nil {
				return &SpecError{Name: s.Name, Reason: fmt.Sprintf("default %q is not a valid %s", part, s.Kind)}
			}
		}
	}
	// An absent optional primitive has no value to bind, and zero is not a value the caller declared.
	if s.Kind != String && !s.Multi && !s.Required && !s.Nullable && s.Default == nil {
		return &SpecError{Name: s.Name, Reason: fmt.Sprintf("optional %s parameter needs a default or must be nullable", s.Kind)}
	}
	return nil
}

func (s Spec) defaultParts() []string {
	if s.Default == nil {
		return nil
	}
	if !s.Multi {
		return []string{*s.Default}
	}
	return splitValues([]string{*s.Default})
}

// ParseSpec parses the textual field form
//
//	name:kind[:required][:nullable][:multi][:default=value]
//
// The default option must come last; its value may contain colons.
//
// Example:
//
//	binder.ParseSpec("age:int:required:default=-1")
func ParseSpec(text string) (Spec, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 {
		return Spec{}, &SpecError{Reason: fmt.Sprintf("expected name:kind, got %q", text)}
	}

	kind, err := ParseKind(parts[1])
	if err != nil {
		return Spec{}, fmt.Errorf("field %q: %w", parts[0], err)
	}

	spec := Spec{Name: strings.TrimSpace(parts[0]), Kind: kind}
	for i := 2; i < len(parts); i++ {
		opt := parts[i]
		switch {
		case opt == "required":
			spec.Required = true
		case opt == "nullable":
			spec.Nullable = true
		case opt == "multi":
			spec.Multi = true
		case strings.HasPrefix(opt, "default="):
			spec.Default = Default(strings.TrimPrefix(strings.Join(parts[i:], ":"), "default="))
			i = len(parts)
		default:
			return Spec{}, &SpecError{Name: spec.Name, Reason: fmt.Sprintf("unknown option %q", opt)}
		}
	}

	if err := spec.validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
