package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrInvalidBasePort = errors.New("base_port must be between 1 and 65535")
	ErrInvalidGrace    = errors.New("grace_seconds must not be negative")
	ErrInvalidLogLevel = errors.New("log level must be debug, info, warn, or error")
)

// validLogLevels is the set of accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateBasePort validates a base port value. Zero means "unset" and is
// accepted.
func ValidateBasePort(port int) error {
	if port == 0 {
		return nil
	}
	if port < 1 || port > 65535 {
		return &ValidationError{
			Field:   "base_port",
			Value:   fmt.Sprintf("%d", port),
			Message: "must be between 1 and 65535",
			Err:     ErrInvalidBasePort,
		}
	}
	return nil
}

// ValidateGraceSeconds validates the grace period value.
func ValidateGraceSeconds(seconds int) error {
	if seconds < 0 {
		return &ValidationError{
			Field:   "grace_seconds",
			Value:   fmt.Sprintf("%d", seconds),
			Message: "must not be negative",
			Err:     ErrInvalidGrace,
		}
	}
	return nil
}

// ValidateLogLevel validates a log level string. Empty means "unset" and is
// accepted.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if !validLogLevels[level] {
		return &ValidationError{
			Field:   "log.level",
			Value:   level,
			Message: "must be debug, info, warn, or error",
			Err:     ErrInvalidLogLevel,
		}
	}
	return nil
}

// Validate checks every field of the config.
func (c *GlobalConfig) Validate() error {
	if c == nil {
		return nil
	}
	if err := ValidateBasePort(c.BasePort); err != nil {
		return err
	}
	if err := ValidateGraceSeconds(c.GraceSeconds); err != nil {
		return err
	}
	if err := ValidateLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
