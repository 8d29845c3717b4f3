package inspect_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meetnow/validated-attributes/pkg/inspect"
	"github.com/meetnow/validated-attributes/pkg/value"
)

func TestFormat_Scalars(t *testing.T) {
	t.Parallel()

	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "undefined", input: value.Undefined, want: "undefined"},
		{name: "null", input: nil, want: "null"},
		{name: "bool", input: false, want: "false"},
		{name: "int", input: 12, want: "12"},
		{name: "float", input: 1.5, want: "1.5"},
		{name: "string", input: `a"b`, want: `"a\"b"`},
		{name: "func", input: func() {}, want: "[Function]"},
		{name: "regexp", input: regexp.MustCompile(`^a+$`), want: "/^a+$/"},
		{name: "regexp value", input: *regexp.MustCompile(`^a+$`), want: "/^a+$/"},
		{name: "time", input: ts, want: "2020-01-02T03:04:05Z"},
		{name: "error", input: errors.New("boom"), want: "[boom]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspect.Format(tt.input))
		})
	}
}

func TestFormat_Composites(t *testing.T) {
	t.Parallel()

	t.Run("slice", func(t *testing.T) {
		assert.Equal(t, "[1 a]", inspect.Format([]any{1, "a"}))
	})

	t.Run("map keys are sorted", func(t *testing.T) {
		assert.Equal(t, "map[a:1 b:2]", inspect.Format(map[string]int{"b": 2, "a": 1}))
	})

	t.Run("depth is bounded", func(t *testing.T) {
		deep := map[string]any{"a": map[string]any{"b": map[string]any{"c": map[string]any{"d": map[string]any{"e": 1}}}}}
		out := inspect.Format(deep)
		assert.Contains(t, out, "<max>")
		assert.NotContains(t, out, "e:1")

		assert.Contains(t, inspect.FormatDepth(deep, 10), "e:1")
	})

	t.Run("negative depth", func(t *testing.T) {
		out := inspect.FormatDepth(map[string]any{"a": []int{1}}, -5)
		assert.Contains(t, out, "<max>")
	})
}
