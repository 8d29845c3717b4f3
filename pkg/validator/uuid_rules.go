package validator

import (
	"github.com/google/uuid"

	"github.com/meetnow/validated-attributes/pkg/value"
)

// IsUUID accepts canonical hyphenated UUID strings (any letter case) of
// version 1 to 5 with the RFC 4122 variant.
func IsUUID(v any) bool {
	s, ok := value.AsString(v)
	if !ok {
		return false
	}

	// Fast rejection before parsing; uuid.Parse also accepts urn and braced forms.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if ver := id.Version(); ver < 1 || ver > 5 {
		return false
	}
	return id.Variant() == uuid.RFC4122
}
