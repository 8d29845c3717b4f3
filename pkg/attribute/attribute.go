package attribute

import (
	"maps"

	"github.com/meetnow/validated-attributes/pkg/validator"
	"github.com/meetnow/validated-attributes/pkg/value"
)

// Flags holds arbitrary application metadata attached to an attribute. The
// attribute algorithms never read them.
type Flags map[string]any

// Attribute is the common behaviour of all attribute variants.
type Attribute interface {
	Name() string
	Flags() Flags
	IsOptional() bool

	// Validate returns input unchanged when it conforms, or a *ValidationError.
	Validate(input any) (any, error)
	// NewDefault returns a fresh default value.
	NewDefault() any
	// MergeDefault fills absent parts of v with defaults, recursively for
	// tuples and schemas. Undeclared schema fields are dropped.
	MergeDefault(v any, nullIsUndefined bool) (any, error)
	// NewSkeleton returns the shape of the attribute with every leaf set to nil.
	NewSkeleton() any

	core() *Base
	clone() Attribute
}

// Base holds the state shared by every attribute variant.
type Base struct {
	name      string
	flags     Flags
	def       Default
	optional  bool
	validator validator.Predicate
}

func newBase(name string, check validator.Predicate, def Default) Base {
	return Base{
		name:      name,
		flags:     Flags{},
		def:       def,
		validator: check,
	}
}

// Name returns the attribute name used in error messages.
func (b *Base) Name() string { return b.name }

// Flags returns a copy of the attribute's flags.
func (b *Base) Flags() Flags { return maps.Clone(b.flags) }

// Flag returns a single flag value.
func (b *Base) Flag(key string) (any, bool) {
	v, ok := b.flags[key]
	return v, ok
}

// IsOptional reports whether null and Undefined are accepted.
func (b *Base) IsOptional() bool { return b.optional }

// Default returns the attribute's default.
func (b *Base) Default() Default { return b.def }

// Validate returns input unchanged when it satisfies the attribute.
func (b *Base) Validate(input any) (any, error) {
	if _, err := b.check(input); err != nil {
		return nil, err
	}
	return input, nil
}

// NewDefault resolves the default. Generators run on every call.
func (b *Base) NewDefault() any {
	return b.def.Resolve()
}

// MergeDefault replaces Undefined with the default. Null is replaced too,
// unless the attribute is optional and nullIsUndefined is false.
func (b *Base) MergeDefault(v any, nullIsUndefined bool) (any, error) {
	if b.wantsDefault(v, nullIsUndefined) {
		return b.NewDefault(), nil
	}
	return v, nil
}

// NewSkeleton returns nil; structural attributes override it.
func (b *Base) NewSkeleton() any { return nil }

func (b *Base) core() *Base { return b }

// check applies the null gate and the bound predicate. present is false when
// input is null or undefined and the attribute is optional; structural
// variants then skip their recursion.
func (b *Base) check(input any) (present bool, err error) {
	if value.IsAbsent(input) {
		if !b.optional {
			return false, newValidationError(b.name, input, false)
		}
		return false, nil
	}
	if !b.validator(input) {
		return false, newValidationError(b.name, input, b.optional)
	}
	return true, nil
}

func (b *Base) wantsDefault(v any, nullIsUndefined bool) bool {
	if value.IsUndefined(v) {
		return true
	}
	return value.IsNull(v) && (!b.optional || nullIsUndefined)
}

// copyFrom copies name, optionality, default and a shallow copy of the flags.
func (b *Base) copyFrom(src *Base) {
	b.name = src.name
	b.optional = src.optional
	b.def = src.def
	b.flags = maps.Clone(src.flags)
	if b.flags == nil {
		b.flags = Flags{}
	}
}
