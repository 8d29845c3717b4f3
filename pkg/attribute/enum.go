package attribute

import (
	"slices"
	"strings"
)

// Enum accepts a value when any of its candidates does.
type Enum struct {
	Base
	values []Attribute
}

// NewEnum compiles the candidates with ToAttribute. The default is the first
// candidate's default. It panics with ErrNoCandidates when specs is empty.
func NewEnum(specs []any) *Enum {
	if len(specs) == 0 {
		panic(ErrNoCandidates)
	}
	values := make([]Attribute, len(specs))
	for i, spec := range specs {
		values[i] = ToAttribute(spec)
	}
	return newEnum(values)
}

func newEnum(values []Attribute) *Enum {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name()
	}
	check := func(x any) bool {
		for _, v := range values {
			if IsValid(v, x) {
				return true
			}
		}
		return false
	}
	return &Enum{
		Base:   newBase("oneOf("+strings.Join(names, ", ")+")", check, values[0].core().def),
		values: values,
	}
}

// Values returns the candidate attributes in declaration order.
func (e *Enum) Values() []Attribute { return slices.Clone(e.values) }

func (e *Enum) clone() Attribute {
	c := newEnum(e.values)
	c.copyFrom(&e.Base)
	return c
}
