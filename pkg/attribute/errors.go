package attribute

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meetnow/validated-attributes/pkg/inspect"
	"github.com/meetnow/validated-attributes/pkg/logger"
)

var (
	ErrNotSequence    = errors.New("value must be a sequence (or undefined)")
	ErrNotRecord      = errors.New("value must be a record (or undefined)")
	ErrLengthMismatch = errors.New("the number of elements must be equal")
	ErrNoCandidates   = errors.New("oneOf needs at least one candidate")
	ErrNilType        = errors.New("instanceOf needs a type")
)

// LocatorKind tells how a Locator addresses a child value.
type LocatorKind uint8

const (
	LocatorIndex LocatorKind = iota + 1
	LocatorKey
	LocatorField
)

// Locator identifies a child of a structural value: a tuple or sequence
// position, a map key or a schema field.
type Locator struct {
	Kind  LocatorKind
	Index int
	Name  string
}

func IndexLocator(i int) Locator { return Locator{Kind: LocatorIndex, Index: i} }
func KeyLocator(key string) Locator { return Locator{Kind: LocatorKey, Name: key} }
func FieldLocator(name string) Locator { return Locator{Kind: LocatorField, Name: name} }

// String renders the locator as a path segment: [1], ["key"] or .field.
func (l Locator) String() string {
	switch l.Kind {
	case LocatorIndex:
		return fmt.Sprintf("[%d]", l.Index)
	case LocatorKey:
		return fmt.Sprintf("[%q]", l.Name)
	case LocatorField:
		return "." + l.Name
	default:
		return ""
	}
}

// Violation is one failed child of a structural attribute. Nested structural
// failures carry their own Violations.
type Violation struct {
	Locator    Locator
	Expected   string
	Got        any
	Optional   bool
	Violations []Violation
}

// ValidationError reports a value that does not conform to an attribute.
// Got is the value that was validated; for structural attributes the failing
// children are listed in Violations.
type ValidationError struct {
	Expected   string
	Got        any
	Optional   bool
	Violations []Violation
}

func newValidationError(expected string, got any, optional bool) *ValidationError {
	return &ValidationError{Expected: expected, Got: got, Optional: optional}
}

// Error renders the error with the default inspection depth.
func (e *ValidationError) Error() string {
	return e.Message(inspect.DefaultDepth)
}

// Message renders the error, printing Got at most depth levels deep. A
// structural error lists each failing child on its own line, addressed by its
// path.
func (e *ValidationError) Message(depth int) string {
	msg := message(e.Expected, e.Optional, e.Got, depth)
	if len(e.Violations) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	b.WriteString("\nviolations:")
	for _, f := range e.Failures() {
		b.WriteString("\n  ")
		b.WriteString(f.Path)
		b.WriteString(": expected ")
		b.WriteString(f.Expected)
		if f.Optional {
			b.WriteString(" (optional)")
		}
		b.WriteString(", got ")
		b.WriteString(inspect.FormatDepth(f.Got, depth))
	}
	return b.String()
}

func message(expected string, optional bool, got any, depth int) string {
	var b strings.Builder
	b.WriteString("expected: ")
	b.WriteString(expected)
	if optional {
		b.WriteString(" (optional)")
	}
	b.WriteString("\ngot: ")
	b.WriteString(inspect.FormatDepth(got, depth))
	return b.String()
}

// Failure is a leaf of a violation tree together with its full path.
type Failure struct {
	Path     string
	Expected string
	Got      any
	Optional bool
}

func (f Failure) String() string {
	msg := message(f.Expected, f.Optional, f.Got, inspect.DefaultDepth)
	if f.Path == "" {
		return msg
	}
	return f.Path + ": " + msg
}

// Failures flattens the violation tree into its leaves. An error without
// violations yields itself with an empty path.
func (e *ValidationError) Failures() []Failure {
	if len(e.Violations) == 0 {
		return []Failure{{Expected: e.Expected, Got: e.Got, Optional: e.Optional}}
	}
	var out []Failure
	collectFailures(&out, "", e.Violations)
	return out
}

func collectFailures(out *[]Failure, prefix string, violations []Violation) {
	for _, v := range violations {
		path := prefix + v.Locator.String()
		if len(v.Violations) > 0 {
			collectFailures(out, path, v.Violations)
			continue
		}
		*out = append(*out, Failure{
			Path:     strings.TrimPrefix(path, "."),
			Expected: v.Expected,
			Got:      v.Got,
			Optional: v.Optional,
		})
	}
}

// LogValue implements slog.LogValuer.
func (e *ValidationError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("expected", e.Expected),
		slog.Bool("optional", e.Optional),
		slog.String("got", inspect.Format(e.Got)),
	}
	if len(e.Violations) > 0 {
		failures := e.Failures()
		group := make([]slog.Attr, 0, len(failures))
		for _, f := range failures {
			group = append(group, slog.String(f.Path, f.Expected+", got "+inspect.Format(f.Got)))
		}
		attrs = append(attrs, logger.Group("violations", group...))
	}
	return slog.GroupValue(attrs...)
}

// violationFrom turns a child's validation error into a violation located at
// loc. Errors of any other type are returned as is.
func violationFrom(err error, loc Locator, suffix string) (Violation, error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return Violation{}, err
	}
	return Violation{
		Locator:    loc,
		Expected:   verr.Expected + " " + suffix,
		Got:        verr.Got,
		Optional:   verr.Optional,
		Violations: verr.Violations,
	}, nil
}
