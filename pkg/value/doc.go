// Package value models the runtime values that attributes validate.
//
// Attributes work over plain Go values held in `any`: scalars, slices, maps and
// structs, typically produced by decoding JSON or YAML documents or assembled by
// hand. This package classifies such values into a small closed set of kinds,
// gives uniform read access to sequences and records, and implements the strict
// equality used by fixed-value attributes.
//
// # Kinds
//
// KindOf maps every value onto one Kind:
//
//   - nil and typed nil pointers, maps, slices, funcs, chans and interfaces are KindNull
//   - Undefined, the absence marker, is KindUndefined
//   - bool is KindBoolean, every integer and float type is KindNumber
//   - string types are KindString, funcs are KindFunction
//   - *regexp.Regexp and regexp.Regexp are KindRegExp, time.Time and *time.Time are KindDate
//   - any other value implementing error is KindError
//   - slices and arrays are KindArray
//   - everything else (maps, structs, pointers to structs) is KindObject
//
// # Absence
//
// Go has a single nil, so "the field is not there" is expressed with the
// Undefined sentinel. Field returns Undefined for record keys that do not exist,
// and callers may pass Undefined explicitly to ask for defaults:
//
//	v := value.Field(map[string]any{"a": 1}, "b") // value.Undefined
//	value.IsAbsent(v)                             // true
//
// # Records
//
// A record is a string-keyed map or a struct. Struct fields are keyed by their
// json tag name when one is present. Entries walks records in a stable order:
// sorted keys for maps, declaration order for structs.
package value
