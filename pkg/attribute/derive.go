package attribute

import "maps"

// DefaultsTo returns a copy of a with a different default.
func DefaultsTo[T Attribute](a T, d Default) T {
	return derive(a, func(b *Base) { b.def = d })
}

// As returns a copy of a with each of the named flags set to true.
func As[T Attribute](a T, flags ...string) T {
	return derive(a, func(b *Base) {
		for _, f := range flags {
			b.flags[f] = true
		}
	})
}

// With returns a copy of a with the given flags merged in.
func With[T Attribute](a T, flags Flags) T {
	return derive(a, func(b *Base) { maps.Copy(b.flags, flags) })
}

// MakeOptional returns a copy of a that also accepts null and undefined.
func MakeOptional[T Attribute](a T) T {
	return derive(a, func(b *Base) { b.optional = true })
}

func derive[T Attribute](a T, mutate func(*Base)) T {
	c := a.clone().(T)
	mutate(c.core())
	return c
}

func (l *Leaf) DefaultsTo(d Default) *Leaf { return DefaultsTo(l, d) }

func (l *Leaf) As(flags ...string) *Leaf { return As(l, flags...) }

func (l *Leaf) With(flags Flags) *Leaf { return With(l, flags) }

func (l *Leaf) MakeOptional() *Leaf { return MakeOptional(l) }

func (f *Fixed) DefaultsTo(d Default) *Fixed { return DefaultsTo(f, d) }

func (f *Fixed) As(flags ...string) *Fixed { return As(f, flags...) }

func (f *Fixed) With(flags Flags) *Fixed { return With(f, flags) }

func (f *Fixed) MakeOptional() *Fixed { return MakeOptional(f) }

func (o *Object) DefaultsTo(d Default) *Object { return DefaultsTo(o, d) }

func (o *Object) As(flags ...string) *Object { return As(o, flags...) }

func (o *Object) With(flags Flags) *Object { return With(o, flags) }

func (o *Object) MakeOptional() *Object { return MakeOptional(o) }

func (t *Tuple) DefaultsTo(d Default) *Tuple { return DefaultsTo(t, d) }

func (t *Tuple) As(flags ...string) *Tuple { return As(t, flags...) }

func (t *Tuple) With(flags Flags) *Tuple { return With(t, flags) }

func (t *Tuple) MakeOptional() *Tuple { return MakeOptional(t) }

func (s *Schema) DefaultsTo(d Default) *Schema { return DefaultsTo(s, d) }

func (s *Schema) As(flags ...string) *Schema { return As(s, flags...) }

func (s *Schema) With(flags Flags) *Schema { return With(s, flags) }

func (s *Schema) MakeOptional() *Schema { return MakeOptional(s) }

func (c *Compound) DefaultsTo(d Default) *Compound { return DefaultsTo(c, d) }

func (c *Compound) As(flags ...string) *Compound { return As(c, flags...) }

func (c *Compound) With(flags Flags) *Compound { return With(c, flags) }

func (c *Compound) MakeOptional() *Compound { return MakeOptional(c) }

func (e *Enum) DefaultsTo(d Default) *Enum { return DefaultsTo(e, d) }

func (e *Enum) As(flags ...string) *Enum { return As(e, flags...) }

func (e *Enum) With(flags Flags) *Enum { return With(e, flags) }

func (e *Enum) MakeOptional() *Enum { return MakeOptional(e) }
