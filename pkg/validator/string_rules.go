package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/meetnow/validated-attributes/pkg/value"
)

var integerStringRegex = regexp.MustCompile(`^[0-9]+$`)

// IsIntegerString accepts strings made only of ASCII digits.
func IsIntegerString(v any) bool {
	s, ok := value.AsString(v)
	return ok && integerStringRegex.MatchString(s)
}

// IsNonemptyString accepts strings that are not blank once surrounding
// whitespace is trimmed.
func IsNonemptyString(v any) bool {
	s, ok := value.AsString(v)
	return ok && len(strings.TrimFunc(s, isTrimmable)) > 0
}

// isTrimmable matches the ECMAScript whitespace and line terminator set: the
// byte order mark counts as whitespace, NEL does not.
func isTrimmable(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
