package attribute

import (
	"encoding/json"
	"reflect"

	"github.com/meetnow/validated-attributes/pkg/inspect"
	"github.com/meetnow/validated-attributes/pkg/validator"
	"github.com/meetnow/validated-attributes/pkg/value"
)

// Leaf is an attribute defined only by a name, a predicate and a default.
// The built-in primitives (string, number, uuid, ...) are leaves.
type Leaf struct {
	Base
}

// NewLeaf creates a required leaf attribute.
func NewLeaf(name string, check validator.Predicate, def Default) *Leaf {
	return &Leaf{Base: newBase(name, check, def)}
}

func (l *Leaf) clone() Attribute {
	c := NewLeaf(l.name, l.validator, l.def)
	c.copyFrom(&l.Base)
	return c
}

// Fixed accepts exactly one value, compared with strict equality.
type Fixed struct {
	Base
	value     any
	valueType value.Kind
}

// NewFixed creates an attribute that accepts only v. Its default is v.
func NewFixed(v any) *Fixed {
	return &Fixed{
		Base:      newBase(literalName(v), func(x any) bool { return value.Equal(x, v) }, Literal(v)),
		value:     v,
		valueType: value.KindOf(v),
	}
}

func (f *Fixed) Value() any { return f.value }

func (f *Fixed) ValueType() value.Kind { return f.valueType }

func (f *Fixed) clone() Attribute {
	c := NewFixed(f.value)
	c.copyFrom(&f.Base)
	return c
}

// literalName renders v as a JSON literal, falling back to the inspector for
// values JSON cannot express.
func literalName(v any) string {
	if value.IsUndefined(v) {
		return "undefined"
	}
	switch value.KindOf(v) {
	case value.KindFunction, value.KindRegExp, value.KindError:
		return inspect.Format(v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return inspect.Format(v)
	}
	return string(data)
}

// Object accepts instances of a Go type. For interface types any
// implementation is accepted.
type Object struct {
	Base
	typ reflect.Type
}

// NewObject creates an instanceOf attribute. Its default is a new zero value
// of t; for pointer types a pointer to a new zero element.
func NewObject(t reflect.Type) *Object {
	if t == nil {
		panic(ErrNilType)
	}
	return &Object{
		Base: newBase("instanceOf("+t.String()+")", instanceOf(t), Generator(func() any {
			return newInstance(t)
		})),
		typ: t,
	}
}

func (o *Object) Type() reflect.Type { return o.typ }

func (o *Object) clone() Attribute {
	c := NewObject(o.typ)
	c.copyFrom(&o.Base)
	return c
}

func instanceOf(t reflect.Type) validator.Predicate {
	return func(x any) bool {
		xt := reflect.TypeOf(x)
		if xt == nil {
			return false
		}
		if t.Kind() == reflect.Interface {
			return xt.Implements(t)
		}
		return xt == t
	}
}

func newInstance(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}
