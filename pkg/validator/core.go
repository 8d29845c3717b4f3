package validator

import "github.com/meetnow/validated-attributes/pkg/value"

// Predicate reports whether a value has a particular shape.
type Predicate func(v any) bool

// OfKind returns a predicate accepting exactly the values of kind k.
func OfKind(k value.Kind) Predicate {
	return func(v any) bool {
		return value.KindOf(v) == k
	}
}
