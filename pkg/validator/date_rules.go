package validator

import (
	"regexp"
	"time"

	"github.com/meetnow/validated-attributes/pkg/value"
)

var dateStringRegex = regexp.MustCompile(`^\d{4}-(1[0-2]|0[1-9])-(3[01]|[1-2]\d|0[1-9])$`)

// IsDateString accepts YYYY-MM-DD strings naming a real calendar day.
func IsDateString(v any) bool {
	s, ok := value.AsString(v)
	if !ok || !dateStringRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
