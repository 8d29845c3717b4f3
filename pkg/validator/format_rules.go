package validator

import (
	"regexp"

	"github.com/meetnow/validated-attributes/pkg/value"
)

// Dot-separated atoms in the local part, alphanumeric-hyphen labels in the domain.
var emailRegex = regexp.MustCompile("(?i)^[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	`@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)

// IsEmail accepts strings shaped like an RFC 5322 address.
func IsEmail(v any) bool {
	s, ok := value.AsString(v)
	return ok && emailRegex.MatchString(s)
}
