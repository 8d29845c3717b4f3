package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meetnow/validated-attributes/pkg/value"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	shared := []any{1, 2}
	sharedMap := map[string]any{"a": 1}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "same ints", a: 1, b: 1, want: true},
		{name: "int and float", a: 1, b: 1.0, want: true},
		{name: "int and uint", a: int64(5), b: uint8(5), want: true},
		{name: "negative int and uint", a: -1, b: uint(math.MaxUint64), want: false},
		{name: "different numbers", a: 1, b: 2, want: false},
		{name: "NaN", a: math.NaN(), b: math.NaN(), want: false},
		{name: "strings", a: "a", b: "a", want: true},
		{name: "named string", a: label("a"), b: "a", want: true},
		{name: "string and number", a: "1", b: 1, want: false},
		{name: "bools", a: true, b: true, want: true},
		{name: "nulls", a: nil, b: (*point)(nil), want: true},
		{name: "undefined", a: value.Undefined, b: value.Undefined, want: true},
		{name: "null and undefined", a: nil, b: value.Undefined, want: false},
		{name: "same slice", a: shared, b: shared, want: true},
		{name: "equal but distinct slices", a: []any{1, 2}, b: []any{1, 2}, want: false},
		{name: "same map", a: sharedMap, b: sharedMap, want: true},
		{name: "distinct maps", a: map[string]any{"a": 1}, b: map[string]any{"a": 1}, want: false},
		{name: "comparable structs", a: point{X: 1}, b: point{X: 1}, want: true},
		{name: "different structs", a: point{X: 1}, b: point{X: 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Equal(tt.a, tt.b))
		})
	}
}
