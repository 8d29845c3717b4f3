// Package attribute implements composable attributes: values that describe the
// shape of runtime data and know how to validate it, produce a default for it,
// merge a partial value with those defaults and build an empty skeleton of it.
//
// # Variants
//
// Every attribute implements the Attribute interface and embeds Base, which
// carries the name, free-form flags, the default and the optionality switch.
// The set of variants is closed:
//
//   - Leaf      a named predicate, used for the built-in primitives
//   - Fixed     exactly one value, compared with strict equality
//   - Object    an instance of a given Go type
//   - Tuple     a fixed-length sequence with one attribute per position
//   - Schema    a record with one attribute per declared field
//   - Compound  a homogeneous sequence or map, optionally typed with OfType
//   - Enum      any one of several candidate attributes
//
// # Specs
//
// Plain Go values compile into attributes with ToAttribute: records become
// schemas, sequences become tuples and everything else becomes a fixed value.
// Nested literals therefore describe whole trees without explicit constructors:
//
//	spec := map[string]any{
//	    "kind": "point",
//	    "xy":   []any{NewLeaf("number", validator.IsNumber, Literal(0)), 0},
//	}
//	attr := attribute.ToAttribute(spec)
//
// # Immutability
//
// Attributes never change after construction. DefaultsTo, As, With,
// MakeOptional and Compound.OfType return modified copies and leave the
// receiver untouched, so a single attribute tree can be shared freely between
// goroutines.
//
// # Errors
//
// Validate reports data problems as *ValidationError. Structural attributes
// collect every failing child into Violations instead of stopping at the first
// one. MergeDefault reports values that cannot be merged at all (wrong
// container kind, wrong tuple length) as errors wrapping ErrNotSequence,
// ErrNotRecord or ErrLengthMismatch; those indicate a bug in the caller rather
// than bad input. Schema definitions that can never work, such as an enum with
// no candidates, panic at construction.
package attribute
