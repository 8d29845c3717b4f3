package value

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Entry is a single key/value pair of a record.
type Entry struct {
	Key   string
	Value any
}

// Len returns the number of elements of a sequence, or 0 for anything else.
func Len(v any) int {
	if KindOf(v) != KindArray {
		return 0
	}
	return reflect.ValueOf(v).Len()
}

// Index returns the i-th element of a sequence. Out-of-range positions and
// non-sequences yield Undefined.
func Index(v any, i int) any {
	if KindOf(v) != KindArray {
		return Undefined
	}
	rv := reflect.ValueOf(v)
	if i < 0 || i >= rv.Len() {
		return Undefined
	}
	return rv.Index(i).Interface()
}

// Elements copies the elements of a sequence into a new slice.
func Elements(v any) []any {
	if KindOf(v) != KindArray {
		return nil
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Field looks up a key of a record. Missing keys and non-records yield Undefined.
func Field(v any, name string) any {
	if KindOf(v) != KindObject {
		return Undefined
	}
	rv := reflect.Indirect(reflect.ValueOf(v))

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return Undefined
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return Undefined
		}
		return mv.Interface()
	case reflect.Struct:
		for _, f := range structFields(rv.Type()) {
			if f.key == name {
				return rv.Field(f.index).Interface()
			}
		}
	}
	return Undefined
}

// Entries lists the entries of a record: maps in sorted key order, structs in
// field declaration order. Non-records yield nil.
func Entries(v any) []Entry {
	if KindOf(v) != KindObject {
		return nil
	}
	rv := reflect.Indirect(reflect.ValueOf(v))

	switch rv.Kind() {
	case reflect.Map:
		out := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Entry{Key: keyString(iter.Key()), Value: iter.Value().Interface()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out
	case reflect.Struct:
		fields := structFields(rv.Type())
		out := make([]Entry, 0, len(fields))
		for _, f := range fields {
			out = append(out, Entry{Key: f.key, Value: rv.Field(f.index).Interface()})
		}
		return out
	}
	return nil
}

// AsString returns the string held by v, including named string types.
func AsString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if KindOf(v) != KindString {
		return "", false
	}
	return reflect.ValueOf(v).String(), true
}

// AsFloat converts any Go number to float64.
func AsFloat(v any) (float64, bool) {
	if KindOf(v) != KindNumber {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}

type structField struct {
	key   string
	index int
}

func structFields(t reflect.Type) []structField {
	out := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}
		out = append(out, structField{key: key, index: i})
	}
	return out
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
