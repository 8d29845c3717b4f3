package attributes

import (
	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/value"
)

type (
	Attribute       = attribute.Attribute
	Default         = attribute.Default
	Flags           = attribute.Flags
	ValidationError = attribute.ValidationError
	Violation       = attribute.Violation
	Failure         = attribute.Failure
	Locator         = attribute.Locator
	Kind            = value.Kind
)

// Undefined marks an absent value. Missing record fields read as Undefined.
var Undefined = value.Undefined

// Literal returns a Default that always yields v.
func Literal(v any) Default { return attribute.Literal(v) }

// Generator returns a Default that calls fn for every new value.
func Generator(fn func() any) Default { return attribute.Generator(fn) }

// ToAttribute compiles a spec into an attribute. See attribute.ToAttribute.
func ToAttribute(spec any) Attribute {
	return attribute.ToAttribute(spec)
}

// Validate returns input unchanged if it conforms to spec, or a
// *ValidationError describing every violation.
func Validate(spec, input any) (any, error) {
	return attribute.ToAttribute(spec).Validate(input)
}

// IsValid reports whether input conforms to spec.
func IsValid(spec, input any) bool {
	return attribute.IsValid(spec, input)
}

// NewDefault returns a fresh default value for spec.
func NewDefault(spec any) any {
	return attribute.ToAttribute(spec).NewDefault()
}

// MergeDefault fills the absent parts of v with defaults. With
// nullIsUndefined, null values of optional attributes are replaced as well.
func MergeDefault(spec, v any, nullIsUndefined bool) (any, error) {
	return attribute.ToAttribute(spec).MergeDefault(v, nullIsUndefined)
}

// NewSkeleton returns the shape of spec with every leaf set to nil.
func NewSkeleton(spec any) any {
	return attribute.ToAttribute(spec).NewSkeleton()
}

// TypeOf classifies v the way attributes see it.
func TypeOf(v any) Kind {
	return value.KindOf(v)
}
