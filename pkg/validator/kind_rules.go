package validator

import "github.com/meetnow/validated-attributes/pkg/value"

var (
	isBoolean  = OfKind(value.KindBoolean)
	isNumber   = OfKind(value.KindNumber)
	isString   = OfKind(value.KindString)
	isRegexp   = OfKind(value.KindRegExp)
	isDate     = OfKind(value.KindDate)
	isFunction = OfKind(value.KindFunction)
	isSequence = OfKind(value.KindArray)
	isRecord   = OfKind(value.KindObject)
)

func IsBoolean(v any) bool { return isBoolean(v) }

func IsNumber(v any) bool { return isNumber(v) }

func IsString(v any) bool { return isString(v) }

// IsRegexp accepts compiled regular expressions, by pointer or by value.
func IsRegexp(v any) bool { return isRegexp(v) }

// IsDate accepts time.Time and non-nil *time.Time values.
func IsDate(v any) bool { return isDate(v) }

func IsFunction(v any) bool { return isFunction(v) }

// IsSequence accepts slices and arrays.
func IsSequence(v any) bool { return isSequence(v) }

// IsRecord accepts maps, structs and pointers to structs.
func IsRecord(v any) bool { return isRecord(v) }
