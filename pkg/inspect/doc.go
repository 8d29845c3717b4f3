// Package inspect renders arbitrary values as short, human-readable strings for
// use in error messages and log records.
//
// Scalars are printed in a compact literal form (strings quoted, null and
// undefined spelled out). Composite values are rendered with go-spew limited to
// a maximum nesting depth, so deep or cyclic structures never produce unbounded
// output:
//
//	inspect.Format([]any{1, "a"})                       // [1 a]
//	inspect.FormatDepth(map[string]any{"a": []int{1}}, 0) // map[a:[<max>]]
//
// The output is meant for people, not for parsing.
package inspect
