package attribute

// Default describes how an attribute produces its default value: either a
// fixed literal or a generator called afresh every time.
//
// Mutable defaults such as slices and maps should use Generator, otherwise all
// callers share one instance.
type Default struct {
	literal  any
	generate func() any
}

// Literal returns a Default that always yields v.
func Literal(v any) Default {
	return Default{literal: v}
}

// Generator returns a Default that calls fn for every new value.
func Generator(fn func() any) Default {
	return Default{generate: fn}
}

// Resolve produces the default value.
func (d Default) Resolve() any {
	if d.generate != nil {
		return d.generate()
	}
	return d.literal
}

// IsGenerator reports whether the default was built with Generator.
func (d Default) IsGenerator() bool {
	return d.generate != nil
}
