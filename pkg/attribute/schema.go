package attribute

import (
	"fmt"

	"github.com/meetnow/validated-attributes/pkg/validator"
	"github.com/meetnow/validated-attributes/pkg/value"
)

type field struct {
	name string
	attr Attribute
}

// Schema is a record with one attribute per declared field. Fields not
// declared by the schema are ignored by Validate and dropped by MergeDefault.
type Schema struct {
	Base
	fields []field
}

// NewSchema compiles every field spec with ToAttribute. Fields are kept in
// sorted order.
func NewSchema(specs map[string]any) *Schema {
	return schemaFromEntries(value.Entries(specs))
}

func schemaFromEntries(entries []value.Entry) *Schema {
	fields := make([]field, len(entries))
	for i, e := range entries {
		fields[i] = field{name: e.Key, attr: ToAttribute(e.Value)}
	}
	return newSchema(fields)
}

func newSchema(fields []field) *Schema {
	def := Generator(func() any {
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			out[f.name] = f.attr.NewDefault()
		}
		return out
	})
	return &Schema{
		Base:   newBase("schema", validator.IsRecord, def),
		fields: fields,
	}
}

// FieldNames lists the declared fields in order.
func (s *Schema) FieldNames() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

// Field returns the attribute of a declared field.
func (s *Schema) Field(name string) (Attribute, bool) {
	for _, f := range s.fields {
		if f.name == name {
			return f.attr, true
		}
	}
	return nil, false
}

// Fields returns the declared fields keyed by name.
func (s *Schema) Fields() map[string]Attribute {
	out := make(map[string]Attribute, len(s.fields))
	for _, f := range s.fields {
		out[f.name] = f.attr
	}
	return out
}

func (s *Schema) Validate(input any) (any, error) {
	present, err := s.check(input)
	if err != nil {
		return nil, err
	}
	if !present {
		return input, nil
	}

	var violations []Violation
	for _, f := range s.fields {
		if _, err := f.attr.Validate(value.Field(input, f.name)); err != nil {
			v, err := violationFrom(err, FieldLocator(f.name), "field")
			if err != nil {
				return nil, err
			}
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		return nil, &ValidationError{
			Expected:   "valid " + s.name,
			Got:        input,
			Optional:   s.optional,
			Violations: violations,
		}
	}
	return input, nil
}

func (s *Schema) MergeDefault(v any, nullIsUndefined bool) (any, error) {
	if s.wantsDefault(v, nullIsUndefined) {
		return s.NewDefault(), nil
	}
	if value.IsNull(v) {
		return v, nil
	}
	if value.KindOf(v) != value.KindObject {
		return nil, fmt.Errorf("%w: got %s", ErrNotRecord, value.KindOf(v))
	}

	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		merged, err := f.attr.MergeDefault(value.Field(v, f.name), nullIsUndefined)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", FieldLocator(f.name), err)
		}
		out[f.name] = merged
	}
	return out, nil
}

func (s *Schema) NewSkeleton() any {
	if s.optional {
		return nil
	}
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		out[f.name] = f.attr.NewSkeleton()
	}
	return out
}

func (s *Schema) clone() Attribute {
	c := newSchema(s.fields)
	c.copyFrom(&s.Base)
	return c
}
