package attributes

import "errors"

var (
	// ErrDecode is returned when a validated value cannot be bound into the target.
	ErrDecode = errors.New("failed to decode value")
)
