package attribute

import (
	"strings"

	"github.com/meetnow/validated-attributes/pkg/validator"
	"github.com/meetnow/validated-attributes/pkg/value"
)

// Iterator walks the children of a container value.
type Iterator func(input any, visit func(loc Locator, elem any))

// IterateSequence visits the elements of a slice or array by index.
func IterateSequence(input any, visit func(Locator, any)) {
	for i, elem := range value.Elements(input) {
		visit(IndexLocator(i), elem)
	}
}

// IterateRecord visits the entries of a map or struct by key.
func IterateRecord(input any, visit func(Locator, any)) {
	for _, e := range value.Entries(input) {
		visit(KeyLocator(e.Key), e.Value)
	}
}

// Compound is a homogeneous container. Without an element type it only checks
// the container itself; OfType adds a per-element check.
type Compound struct {
	Base
	elementAttr Attribute
	skeleton    func() any
	iterate     Iterator
}

// NewCompound creates a container attribute. skeleton builds an empty
// container and also serves as the default.
func NewCompound(name string, check validator.Predicate, skeleton func() any, iterate Iterator) *Compound {
	return &Compound{
		Base:     newBase(name, check, Generator(skeleton)),
		skeleton: skeleton,
		iterate:  iterate,
	}
}

// NewArray creates the untyped array attribute.
func NewArray() *Compound {
	return NewCompound("array", validator.IsSequence, func() any { return []any{} }, IterateSequence)
}

// NewMap creates the untyped map attribute.
func NewMap() *Compound {
	return NewCompound("map", validator.IsRecord, func() any { return map[string]any{} }, IterateRecord)
}

// OfType returns a copy that also validates every element against spec. The
// copy is named after both, e.g. array<string>; an earlier element type is
// replaced.
func (c *Compound) OfType(spec any) *Compound {
	elem := ToAttribute(spec)
	n := c.clone().(*Compound)
	n.elementAttr = elem
	base, _, _ := strings.Cut(c.name, "<")
	n.name = base + "<" + elem.Name() + ">"
	return n
}

// ElementAttr returns the element attribute, or nil for untyped containers.
func (c *Compound) ElementAttr() Attribute { return c.elementAttr }

func (c *Compound) Validate(input any) (any, error) {
	present, err := c.check(input)
	if err != nil {
		return nil, err
	}
	if !present || c.elementAttr == nil {
		return input, nil
	}

	var (
		violations []Violation
		failure    error
	)
	c.iterate(input, func(loc Locator, elem any) {
		if failure != nil {
			return
		}
		if _, err := c.elementAttr.Validate(elem); err != nil {
			v, err := violationFrom(err, loc, "element")
			if err != nil {
				failure = err
				return
			}
			violations = append(violations, v)
		}
	})
	if failure != nil {
		return nil, failure
	}
	if len(violations) > 0 {
		return nil, &ValidationError{
			Expected:   "valid " + c.name + " elements",
			Got:        input,
			Optional:   c.optional,
			Violations: violations,
		}
	}
	return input, nil
}

func (c *Compound) NewSkeleton() any {
	if c.optional {
		return nil
	}
	return c.skeleton()
}

func (c *Compound) clone() Attribute {
	n := NewCompound(c.name, c.validator, c.skeleton, c.iterate)
	n.copyFrom(&c.Base)
	n.elementAttr = c.elementAttr
	return n
}
