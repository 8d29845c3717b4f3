package value

import (
	"reflect"
)

// Equal implements strict equality between two runtime values.
//
// Numbers compare by value regardless of their Go type, strings and booleans
// compare by content, null equals null and Undefined equals Undefined. Other
// comparable values must share a dynamic type. Slices, maps and funcs are equal
// only when they are the same object.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case KindUndefined, KindNull:
		return true
	case KindNumber:
		return numbersEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case KindString:
		sa, _ := AsString(a)
		sb, _ := AsString(b)
		return sa == sb
	case KindBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Map, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}

	if !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return ra.Equal(rb)
}

func numbersEqual(a, b reflect.Value) bool {
	switch {
	case a.CanInt() && b.CanInt():
		return a.Int() == b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() == b.Uint()
	case a.CanInt() && b.CanUint():
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case a.CanUint() && b.CanInt():
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	fa, _ := AsFloat(a.Interface())
	fb, _ := AsFloat(b.Interface())
	return fa == fb
}
