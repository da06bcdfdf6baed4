package theme

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates the plugin was not configured well enough to resolve a theme path
var ErrConfiguration = errors.New("invalid theme configuration")

// ConfigurationError represents a missing or invalid configuration field
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s\nSuggestion: set %s or provide a custom theme file resolver", e.Field, e.Reason, e.Field)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, reason string) error {
	return &ConfigurationError{
		Field:  field,
		Reason: reason,
	}
}

func errNoThemePath() error {
	return NewConfigurationError("themePath", "no theme path set")
}
