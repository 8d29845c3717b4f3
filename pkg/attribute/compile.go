package attribute

import (
	"errors"

	"github.com/meetnow/validated-attributes/pkg/value"
)

// ToAttribute compiles a spec into an attribute. Attributes are returned as
// is, records become schemas, sequences become tuples and any other value
// becomes a Fixed attribute accepting exactly that value.
func ToAttribute(spec any) Attribute {
	if a, ok := spec.(Attribute); ok {
		return a
	}
	switch value.KindOf(spec) {
	case value.KindObject:
		return schemaFromEntries(value.Entries(spec))
	case value.KindArray:
		return NewTuple(value.Elements(spec))
	default:
		return NewFixed(spec)
	}
}

// IsValid reports whether input conforms to spec. Errors other than
// *ValidationError indicate a broken attribute and are re-panicked.
func IsValid(spec, input any) bool {
	_, err := ToAttribute(spec).Validate(input)
	if err == nil {
		return true
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return false
	}
	panic(err)
}
