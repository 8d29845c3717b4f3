package config

import (
	"errors"
	"fmt"

	"github.com/meetnow/validated-attributes/pkg/attribute"
	"github.com/meetnow/validated-attributes/pkg/validator"
)

// Settings tunes the attribute runtime.
type Settings struct {
	// InspectDepth bounds how deep values are printed in error messages.
	InspectDepth int `env:"ATTRIBUTES_INSPECT_DEPTH" envDefault:"3" json:"inspect_depth"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"ATTRIBUTES_LOG_LEVEL" envDefault:"info" json:"log_level"`
	// LogFormat is json or text.
	LogFormat string `env:"ATTRIBUTES_LOG_FORMAT" envDefault:"json" json:"log_format"`
	// NullIsUndefined makes merges replace null in optional attributes too.
	NullIsUndefined bool `env:"ATTRIBUTES_NULL_IS_UNDEFINED" envDefault:"false" json:"null_is_undefined"`
}

var settingsSchema = attribute.NewSchema(map[string]any{
	"inspect_depth":     attribute.NewLeaf("integer", validator.IsInteger, attribute.Literal(3)),
	"log_level":         attribute.NewEnum([]any{"debug", "info", "warn", "error"}),
	"log_format":        attribute.NewEnum([]any{"json", "text"}),
	"null_is_undefined": attribute.NewLeaf("boolean", validator.IsBoolean, attribute.Literal(false)),
})

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		InspectDepth: 3,
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// LoadSettings loads the given .env files, parses the environment and
// validates the result. Settings are parsed once and cached; loading env files
// drops the cache so the new values are picked up.
func LoadSettings(files ...string) (Settings, error) {
	if len(files) > 0 {
		if err := LoadEnv(files...); err != nil {
			return Settings{}, err
		}
		ResetCache()
	}
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MustLoadSettings works like LoadSettings but panics on failure.
func MustLoadSettings(files ...string) Settings {
	s, err := LoadSettings(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load attribute settings: %v", err))
	}
	return s
}

// Validate checks the settings against their schema.
func (s Settings) Validate() error {
	if _, err := settingsSchema.Validate(s); err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}
	if s.InspectDepth < 0 {
		return errors.Join(ErrInvalidSettings, fmt.Errorf("inspect depth must not be negative, got %d", s.InspectDepth))
	}
	return nil
}

// WithDefaults returns a copy of s where every empty or invalid field is
// replaced by its value from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	def := DefaultSettings()
	if s.InspectDepth < 0 {
		s.InspectDepth = def.InspectDepth
	}
	if !validField("log_level", s.LogLevel) {
		s.LogLevel = def.LogLevel
	}
	if !validField("log_format", s.LogFormat) {
		s.LogFormat = def.LogFormat
	}
	return s
}

func validField(name string, v any) bool {
	attr, ok := settingsSchema.Field(name)
	return ok && attribute.IsValid(attr, v)
}
