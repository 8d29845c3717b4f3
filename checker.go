package attributes

import (
	"log/slog"

	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/config"
	"github.com/meetnow/validated-attributes/pkg/inspect"
	"github.com/meetnow/validated-attributes/pkg/logger"
)

// Checker runs the attribute operations with logging and a fixed merge mode.
// The zero value is not usable; create one with NewChecker. A Checker is safe
// for concurrent use.
type Checker struct {
	logger          *slog.Logger
	depth           int
	nullIsUndefined bool
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) CheckerOption {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInspectDepth sets how deep rejected values are printed in log records.
// Negative depths are ignored.
func WithInspectDepth(depth int) CheckerOption {
	return func(c *Checker) {
		if depth >= 0 {
			c.depth = depth
		}
	}
}

// WithNullAsUndefined makes MergeDefault and Decode replace null in optional
// attributes with their defaults.
func WithNullAsUndefined(enabled bool) CheckerOption {
	return func(c *Checker) {
		c.nullIsUndefined = enabled
	}
}

// WithSettings applies settings, including a logger on stdout built from the
// level and format. Empty or invalid fields fall back to their defaults. Pass
// WithLogger afterwards to log elsewhere.
func WithSettings(s config.Settings) CheckerOption {
	return func(c *Checker) {
		s = s.WithDefaults()
		c.depth = s.InspectDepth
		c.nullIsUndefined = s.NullIsUndefined
		c.logger = logger.New(
			logger.WithLevelName(s.LogLevel),
			logger.WithFormat(logger.Format(s.LogFormat)),
			logger.WithAttr(logger.Component("attributes")),
		)
	}
}

func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		logger: logger.Discard(),
		depth:  inspect.DefaultDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate works like the package-level Validate and logs rejected values at
// debug level.
func (c *Checker) Validate(spec, input any) (any, error) {
	attr := attribute.ToAttribute(spec)
	out, err := attr.Validate(input)
	if err != nil {
		c.logger.Debug("value rejected",
			logger.Operation("validate"),
			logger.Attribute(attr.Name()),
			logger.Value(inspect.FormatDepth(input, c.depth)),
			logger.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (c *Checker) IsValid(spec, input any) bool {
	_, err := c.Validate(spec, input)
	if err == nil {
		return true
	}
	if IsValidationError(err) {
		return false
	}
	panic(err)
}

func (c *Checker) NewDefault(spec any) any {
	return attribute.ToAttribute(spec).NewDefault()
}

func (c *Checker) NewSkeleton(spec any) any {
	return attribute.ToAttribute(spec).NewSkeleton()
}

// MergeDefault works like the package-level MergeDefault using the
// configured merge mode. Values that cannot be merged are logged at warn
// level.
func (c *Checker) MergeDefault(spec, v any) (any, error) {
	attr := attribute.ToAttribute(spec)
	merged, err := attr.MergeDefault(v, c.nullIsUndefined)
	if err != nil {
		c.logger.Warn("cannot merge defaults",
			logger.Operation("merge"),
			logger.Attribute(attr.Name()),
			logger.Value(inspect.FormatDepth(v, c.depth)),
			logger.Error(err),
		)
		return nil, err
	}
	return merged, nil
}

// Decode merges defaults into input, validates the result and binds it into
// out, which must be a non-nil pointer.
func (c *Checker) Decode(spec, input, out any) error {
	attr := attribute.ToAttribute(spec)
	merged, err := c.MergeDefault(attr, input)
	if err != nil {
		return err
	}
	if _, err := c.Validate(attr, merged); err != nil {
		return err
	}
	if err := bind(merged, out); err != nil {
		c.logger.Warn("cannot bind value",
			logger.Operation("decode"),
			logger.Attribute(attr.Name()),
			logger.Error(err),
		)
		return err
	}
	return nil
}
