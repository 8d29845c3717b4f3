package attribute

import (
	"fmt"
	"slices"

	"github.com/meetnow/validated-attributes/pkg/validator"
	"github.com/meetnow/validated-attributes/pkg/value"
)

// Tuple is a fixed-length sequence with one attribute per position.
type Tuple struct {
	Base
	elements []Attribute
}

// NewTuple compiles every element spec with ToAttribute.
func NewTuple(specs []any) *Tuple {
	elements := make([]Attribute, len(specs))
	for i, spec := range specs {
		elements[i] = ToAttribute(spec)
	}
	return newTuple(elements)
}

func newTuple(elements []Attribute) *Tuple {
	def := Generator(func() any {
		out := make([]any, len(elements))
		for i, e := range elements {
			out[i] = e.NewDefault()
		}
		return out
	})
	return &Tuple{
		Base:     newBase("tuple", validator.IsSequence, def),
		elements: elements,
	}
}

// Elements returns the per-position attributes.
func (t *Tuple) Elements() []Attribute { return slices.Clone(t.elements) }

func (t *Tuple) Len() int { return len(t.elements) }

func (t *Tuple) Validate(input any) (any, error) {
	present, err := t.check(input)
	if err != nil {
		return nil, err
	}
	if !present {
		return input, nil
	}

	if n := value.Len(input); n != len(t.elements) {
		return nil, newValidationError(
			fmt.Sprintf("tuple of length %d", len(t.elements)),
			fmt.Sprintf("tuple of length %d", n),
			t.optional,
		)
	}

	var violations []Violation
	for i, e := range t.elements {
		if _, err := e.Validate(value.Index(input, i)); err != nil {
			v, err := violationFrom(err, IndexLocator(i), "element")
			if err != nil {
				return nil, err
			}
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		return nil, &ValidationError{
			Expected:   "valid " + t.name + " fields",
			Got:        input,
			Optional:   t.optional,
			Violations: violations,
		}
	}
	return input, nil
}

func (t *Tuple) MergeDefault(v any, nullIsUndefined bool) (any, error) {
	if t.wantsDefault(v, nullIsUndefined) {
		return t.NewDefault(), nil
	}
	if value.IsNull(v) {
		return v, nil
	}
	if value.KindOf(v) != value.KindArray {
		return nil, fmt.Errorf("%w: got %s", ErrNotSequence, value.KindOf(v))
	}
	if n := value.Len(v); n != len(t.elements) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(t.elements), n)
	}

	out := make([]any, len(t.elements))
	for i, e := range t.elements {
		merged, err := e.MergeDefault(value.Index(v, i), nullIsUndefined)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", IndexLocator(i), err)
		}
		out[i] = merged
	}
	return out, nil
}

func (t *Tuple) NewSkeleton() any {
	if t.optional {
		return nil
	}
	out := make([]any, len(t.elements))
	for i, e := range t.elements {
		out[i] = e.NewSkeleton()
	}
	return out
}

func (t *Tuple) clone() Attribute {
	c := newTuple(t.elements)
	c.copyFrom(&t.Base)
	return c
}
