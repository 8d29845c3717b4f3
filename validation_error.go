package attributes

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/meetnow/validated-attributes/pkg/inspect"
)

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// FieldErrors holds failure messages keyed by path, e.g. "user.tags[1]".
// The root value itself uses the empty path.
type FieldErrors url.Values

// NewFieldErrors creates an empty FieldErrors.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// FieldErrorsOf flattens a validation error into per-path messages. It
// returns nil when err is not a validation error.
func FieldErrorsOf(err error) FieldErrors {
	verr, ok := AsValidationError(err)
	if !ok {
		return nil
	}
	fe := NewFieldErrors()
	for _, f := range verr.Failures() {
		msg := "expected " + f.Expected
		if f.Optional {
			msg += " (optional)"
		}
		fe.Add(f.Path, msg+", got "+inspect.Format(f.Got))
	}
	return fe
}

// Error implements the error interface.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// Add adds an error message for a path.
func (e FieldErrors) Add(path, message string) {
	url.Values(e).Add(path, message)
}

// Get returns the first error message for a path.
func (e FieldErrors) Get(path string) string {
	return url.Values(e).Get(path)
}

func (e FieldErrors) Has(path string) bool {
	return len(e[path]) > 0
}

func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
