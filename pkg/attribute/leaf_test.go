package attribute_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/value"
)

type widget struct {
	ID int
}

func TestLeaf(t *testing.T) {
	t.Parallel()

	t.Run("returns the input unchanged", func(t *testing.T) {
		out, err := stringAttr().Validate("abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", out)
	})

	t.Run("required leaf rejects null and undefined", func(t *testing.T) {
		for _, input := range []any{nil, value.Undefined, (*int)(nil)} {
			_, err := stringAttr().Validate(input)
			verr := requireValidationError(t, err)
			assert.Equal(t, "string", verr.Expected)
			assert.False(t, verr.Optional)
			assert.Empty(t, verr.Violations)
		}
	})

	t.Run("optional leaf accepts null and undefined", func(t *testing.T) {
		attr := stringAttr().MakeOptional()
		for _, input := range []any{nil, value.Undefined} {
			out, err := attr.Validate(input)
			require.NoError(t, err)
			assert.Equal(t, input, out)
		}
	})

	t.Run("formats predicate failures", func(t *testing.T) {
		_, err := stringAttr().Validate(42)
		require.Error(t, err)
		assert.Equal(t, "expected: string\ngot: 42", err.Error())

		_, err = stringAttr().MakeOptional().Validate(true)
		require.Error(t, err)
		assert.Equal(t, "expected: string (optional)\ngot: true", err.Error())
	})

	t.Run("merge uses the default for absent values", func(t *testing.T) {
		attr := stringAttr().DefaultsTo(attribute.Literal("x"))

		merged, err := attr.MergeDefault(value.Undefined, false)
		require.NoError(t, err)
		assert.Equal(t, "x", merged)

		merged, err = attr.MergeDefault(nil, false)
		require.NoError(t, err)
		assert.Equal(t, "x", merged)

		merged, err = attr.MergeDefault(7, false)
		require.NoError(t, err)
		assert.Equal(t, 7, merged)
	})

	t.Run("optional merge keeps null unless treated as undefined", func(t *testing.T) {
		attr := stringAttr().MakeOptional()

		merged, err := attr.MergeDefault(nil, false)
		require.NoError(t, err)
		assert.Nil(t, merged)

		merged, err = attr.MergeDefault(nil, true)
		require.NoError(t, err)
		assert.Equal(t, "", merged)
	})

	t.Run("skeleton is nil", func(t *testing.T) {
		assert.Nil(t, stringAttr().NewSkeleton())
	})
}

func TestFixed(t *testing.T) {
	t.Parallel()

	t.Run("names the value as a literal", func(t *testing.T) {
		tests := []struct {
			input any
			want  string
		}{
			{"a", `"a"`},
			{1, "1"},
			{1.5, "1.5"},
			{true, "true"},
			{nil, "null"},
			{value.Undefined, "undefined"},
			{math.NaN(), "NaN"},
			{errors.New("boom"), "[boom]"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.want, attribute.NewFixed(tt.input).Name())
		}
	})

	t.Run("accepts only the same value", func(t *testing.T) {
		attr := attribute.NewFixed("a")

		out, err := attr.Validate("a")
		require.NoError(t, err)
		assert.Equal(t, "a", out)

		_, err = attr.Validate("b")
		verr := requireValidationError(t, err)
		assert.Equal(t, `"a"`, verr.Expected)
		assert.Equal(t, "b", verr.Got)
	})

	t.Run("compares numbers by value", func(t *testing.T) {
		attr := attribute.NewFixed(1)
		assert.True(t, attribute.IsValid(attr, int64(1)))
		assert.True(t, attribute.IsValid(attr, 1.0))
		assert.False(t, attribute.IsValid(attr, "1"))
	})

	t.Run("never accepts NaN", func(t *testing.T) {
		assert.False(t, attribute.IsValid(attribute.NewFixed(math.NaN()), math.NaN()))
	})

	t.Run("defaults to its value", func(t *testing.T) {
		attr := attribute.NewFixed("a")
		assert.Equal(t, "a", attr.NewDefault())
		assert.Equal(t, "a", attr.Value())
		assert.Equal(t, value.KindString, attr.ValueType())
	})
}

func TestObject(t *testing.T) {
	t.Parallel()

	t.Run("accepts instances of a concrete type", func(t *testing.T) {
		attr := attribute.NewObject(reflect.TypeOf(&widget{}))
		assert.Equal(t, "instanceOf(*attribute_test.widget)", attr.Name())
		assert.True(t, attribute.IsValid(attr, &widget{ID: 1}))
		assert.False(t, attribute.IsValid(attr, widget{ID: 1}))
		assert.False(t, attribute.IsValid(attr, "widget"))
	})

	t.Run("accepts implementations of an interface", func(t *testing.T) {
		attr := attribute.NewObject(reflect.TypeOf((*error)(nil)).Elem())
		assert.Equal(t, "instanceOf(error)", attr.Name())
		assert.True(t, attribute.IsValid(attr, errors.New("boom")))
		assert.False(t, attribute.IsValid(attr, 1))
	})

	t.Run("defaults to a new instance", func(t *testing.T) {
		attr := attribute.NewObject(reflect.TypeOf(&widget{}))
		first, ok := attr.NewDefault().(*widget)
		require.True(t, ok)
		require.NotNil(t, first)
		second := attr.NewDefault().(*widget)
		assert.NotSame(t, first, second)

		_, err := attr.Validate(attr.NewDefault())
		require.NoError(t, err)

		assert.Equal(t, widget{}, attribute.NewObject(reflect.TypeOf(widget{})).NewDefault())
	})

	t.Run("panics without a type", func(t *testing.T) {
		assert.PanicsWithError(t, attribute.ErrNilType.Error(), func() {
			attribute.NewObject(nil)
		})
	})
}
