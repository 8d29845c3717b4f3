package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/validator"
)

func TestToAttribute(t *testing.T) {
	t.Parallel()

	t.Run("returns attributes unchanged", func(t *testing.T) {
		s := stringAttr()
		assert.Same(t, s, attribute.ToAttribute(s))
	})

	t.Run("compiles records to schemas", func(t *testing.T) {
		attr := attribute.ToAttribute(map[string]any{"a": 1})
		schema, ok := attr.(*attribute.Schema)
		require.True(t, ok)
		assert.Equal(t, "schema", schema.Name())
		assert.Equal(t, []string{"a"}, schema.FieldNames())
	})

	t.Run("compiles structs in field order", func(t *testing.T) {
		spec := struct {
			Zeta  any `json:"zeta"`
			Alpha any `json:"alpha"`
		}{Zeta: stringAttr(), Alpha: 1}

		schema, ok := attribute.ToAttribute(spec).(*attribute.Schema)
		require.True(t, ok)
		assert.Equal(t, []string{"zeta", "alpha"}, schema.FieldNames())
		assert.True(t, attribute.IsValid(schema, map[string]any{"zeta": "z", "alpha": 1}))
	})

	t.Run("compiles sequences to tuples", func(t *testing.T) {
		tuple, ok := attribute.ToAttribute([]any{1, "a"}).(*attribute.Tuple)
		require.True(t, ok)
		assert.Equal(t, "tuple", tuple.Name())
		assert.Equal(t, 2, tuple.Len())
	})

	t.Run("compiles scalars to fixed values", func(t *testing.T) {
		fixed, ok := attribute.ToAttribute("a").(*attribute.Fixed)
		require.True(t, ok)
		assert.Equal(t, "a", fixed.Value())

		_, ok = attribute.ToAttribute(nil).(*attribute.Fixed)
		assert.True(t, ok)
	})

	t.Run("compiles nested literals", func(t *testing.T) {
		spec := map[string]any{
			"kind": "point",
			"xy":   []any{numberAttr(), 0},
		}
		assert.True(t, attribute.IsValid(spec, map[string]any{"kind": "point", "xy": []any{3.5, 0}}))
		assert.False(t, attribute.IsValid(spec, map[string]any{"kind": "point", "xy": []any{3.5, 1}}))
		assert.False(t, attribute.IsValid(spec, map[string]any{"kind": "line", "xy": []any{3.5, 0}}))
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	t.Run("agrees with the predicate of a required leaf", func(t *testing.T) {
		inputs := []any{"a", 1, 2.5, true, []any{}, map[string]any{}}
		for _, input := range inputs {
			assert.Equal(t, validator.IsString(input), attribute.IsValid(stringAttr(), input))
			assert.Equal(t, validator.IsNumber(input), attribute.IsValid(numberAttr(), input))
		}
	})

	t.Run("agrees with Validate", func(t *testing.T) {
		spec := personSchema()
		for _, input := range []any{map[string]any{"name": "x"}, map[string]any{}, "x", nil} {
			_, err := spec.Validate(input)
			assert.Equal(t, err == nil, attribute.IsValid(spec, input))
		}
	})
}
