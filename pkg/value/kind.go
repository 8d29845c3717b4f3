package value

import (
	"reflect"
	"regexp"
	"time"
)

// Kind is the coarse classification of a runtime value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindFunction
	KindRegExp
	KindDate
	KindError
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindNumber:    "number",
	KindString:    "string",
	KindFunction:  "function",
	KindRegExp:    "regexp",
	KindDate:      "date",
	KindError:     "error",
	KindArray:     "array",
	KindObject:    "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindOf classifies v.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	if _, ok := v.(undefinedValue); ok {
		return KindUndefined
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return KindNull
	}

	switch v.(type) {
	case *regexp.Regexp, regexp.Regexp:
		return KindRegExp
	case time.Time, *time.Time:
		return KindDate
	case error:
		return KindError
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Func:
		return KindFunction
	case reflect.Slice, reflect.Array:
		return KindArray
	}
	return KindObject
}

// IsNull reports whether v is nil or a typed nil.
func IsNull(v any) bool {
	return KindOf(v) == KindNull
}

// IsAbsent reports whether v is null or Undefined.
func IsAbsent(v any) bool {
	k := KindOf(v)
	return k == KindNull || k == KindUndefined
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
