// Package validator provides the closed-form predicates behind the built-in
// primitive attributes: strings, identifiers, dates, numbers and the other
// value kinds an attribute can require.
//
// Every predicate has the shape
//
//	func(v any) bool
//
// and answers a single question about one runtime value without coercing it:
// IsInteger("3") is false because the value is a string, not a number.
// Predicates are pure and allocation-light, so they are safe to share between
// goroutines and to wrap into attributes created once at program start.
//
// # Catalog
//
//   - Kinds: IsString, IsBoolean, IsNumber, IsRegexp, IsDate, IsFunction,
//     IsSequence, IsRecord (see OfKind for the general form)
//   - Strings: IsIntegerString, IsNonemptyString
//   - Formats: IsUUID, IsEmail, IsDateString
//   - Numbers: IsInteger
//
// # Usage
//
//	validator.IsUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8") // true
//	validator.IsDateString("2021-02-30")                    // false, no such day
//	validator.IsNonemptyString("  \t")                      // false
package validator
