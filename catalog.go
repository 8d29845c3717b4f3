package attributes

import (
	"reflect"
	"regexp"
	"time"

	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/validator"
)

// Catalog is a set of ready-made attributes. Required and Optional are the
// two instances; every attribute of Optional accepts null and undefined.
type Catalog struct {
	optional bool

	String         *attribute.Leaf
	IntegerString  *attribute.Leaf
	NonemptyString *attribute.Leaf
	UUID           *attribute.Leaf
	Email          *attribute.Leaf
	DateString     *attribute.Leaf

	Boolean  *attribute.Leaf
	Number   *attribute.Leaf
	Integer  *attribute.Leaf
	Regexp   *attribute.Leaf
	Date     *attribute.Leaf
	Function *attribute.Leaf

	// Array and Map are untyped; use OfType for element checks.
	Array *attribute.Compound
	Map   *attribute.Compound
}

var (
	// Required holds attributes that reject null and undefined.
	Required = newCatalog(false)
	// Optional holds attributes that accept null and undefined.
	Optional = newCatalog(true)
)

func newCatalog(optional bool) *Catalog {
	c := &Catalog{optional: optional}
	leaf := func(name string, check validator.Predicate, def attribute.Default) *attribute.Leaf {
		return finish(c, attribute.NewLeaf(name, check, def))
	}

	c.String = leaf("string", validator.IsString, attribute.Literal(""))
	c.IntegerString = leaf("integerString", validator.IsIntegerString, attribute.Literal("0"))
	c.NonemptyString = leaf("nonemptyString", validator.IsNonemptyString, attribute.Literal("-"))
	c.UUID = leaf("uuid", validator.IsUUID, attribute.Literal("00000000-0000-4000-8000-000000000000"))
	c.Email = leaf("email", validator.IsEmail, attribute.Literal("name@example.com"))
	c.DateString = leaf("dateString", validator.IsDateString, attribute.Literal("2000-01-01"))

	c.Boolean = leaf("boolean", validator.IsBoolean, attribute.Literal(false))
	c.Number = leaf("number", validator.IsNumber, attribute.Literal(0))
	c.Integer = leaf("integer", validator.IsInteger, attribute.Literal(0))
	c.Regexp = leaf("regexp", validator.IsRegexp, attribute.Generator(func() any { return regexp.MustCompile("") }))
	c.Date = leaf("date", validator.IsDate, attribute.Generator(func() any { return time.Now() }))
	c.Function = leaf("function", validator.IsFunction, attribute.Generator(func() any { return func() {} }))

	c.Array = finish(c, attribute.NewArray())
	c.Map = finish(c, attribute.NewMap())
	return c
}

func finish[T attribute.Attribute](c *Catalog, a T) T {
	if c.optional {
		return attribute.MakeOptional(a)
	}
	return a
}

// Fixed accepts exactly v.
func (c *Catalog) Fixed(v any) *attribute.Fixed {
	return finish(c, attribute.NewFixed(v))
}

// Tuple accepts sequences of len(elements) values, each matching its spec.
func (c *Catalog) Tuple(elements ...any) *attribute.Tuple {
	return finish(c, attribute.NewTuple(elements))
}

// Schema accepts records whose declared fields match their specs.
func (c *Catalog) Schema(fields map[string]any) *attribute.Schema {
	return finish(c, attribute.NewSchema(fields))
}

// InstanceOf accepts values of type t, or implementations of t when t is an
// interface type.
func (c *Catalog) InstanceOf(t reflect.Type) *attribute.Object {
	return finish(c, attribute.NewObject(t))
}

// OneOf accepts values matching any of the candidate specs. The default is
// the first candidate's default.
func (c *Catalog) OneOf(first any, rest ...any) *attribute.Enum {
	return finish(c, attribute.NewEnum(append([]any{first}, rest...)))
}

// InstanceOf is the generic form of Catalog.InstanceOf.
func InstanceOf[T any](c *Catalog) *attribute.Object {
	return c.InstanceOf(reflect.TypeOf((*T)(nil)).Elem())
}
