package validator_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meetnow/validated-attributes/pkg/validator"
	"github.com/meetnow/validated-attributes/pkg/value"
)

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check validator.Predicate
		yes   []any
		no    []any
	}{
		{
			name:  "boolean",
			check: validator.IsBoolean,
			yes:   []any{true, false},
			no:    []any{0, "true", nil},
		},
		{
			name:  "string",
			check: validator.IsString,
			yes:   []any{"", "x", code("c")},
			no:    []any{[]byte("x"), 'x', nil},
		},
		{
			name:  "regexp",
			check: validator.IsRegexp,
			yes:   []any{regexp.MustCompile(""), *regexp.MustCompile("a")},
			no:    []any{"a+", (*regexp.Regexp)(nil)},
		},
		{
			name:  "function",
			check: validator.IsFunction,
			yes:   []any{func() {}, errors.New},
			no:    []any{(func())(nil), "func"},
		},
		{
			name:  "sequence",
			check: validator.IsSequence,
			yes:   []any{[]any{}, []int{1}, [3]string{}},
			no:    []any{map[string]any{}, "abc", ([]any)(nil)},
		},
		{
			name:  "record",
			check: validator.IsRecord,
			yes:   []any{map[string]any{}, struct{ A int }{}, &struct{ A int }{}},
			no:    []any{[]any{}, nil, errors.New("x")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.yes {
				assert.True(t, tt.check(v), "%#v", v)
			}
			for _, v := range tt.no {
				assert.False(t, tt.check(v), "%#v", v)
			}
		})
	}
}

func TestOfKind(t *testing.T) {
	t.Parallel()

	isUndefined := validator.OfKind(value.KindUndefined)
	assert.True(t, isUndefined(value.Undefined))
	assert.False(t, isUndefined(nil))
}
