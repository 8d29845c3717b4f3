package value

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined marks a value that is not there at all, as opposed to nil.
//
// Record lookups return it for missing keys and merge operations treat it as
// "use the default".
var Undefined any = undefinedValue{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}
