package datavalidation

import (
	"errors"
	"fmt"
)

// Configuration errors. They abort a validation run; data that fails a rule
// is reported through [Result] instead.
var (
	// ErrUnknownRule indicates a rule name found in neither the built-in catalog nor the registry.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrEmptyRuleName indicates a rule token whose name is empty after trimming.
	ErrEmptyRuleName = errors.New("empty rule name")

	// ErrNotTraversable indicates a record that is not a string-keyed mapping.
	ErrNotTraversable = errors.New("record is not a keyed mapping")

	// ErrInvalidRule indicates a registry entry with an empty name or nil handler.
	ErrInvalidRule = errors.New("rule must have non-empty name and non-nil handler")

	// ErrInvalidParams indicates rule params that cannot be interpreted, e.g. "min:abc".
	ErrInvalidParams = errors.New("invalid rule params")
)

// ConfigError locates a configuration error in the rule specification.
type ConfigError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "" && e.Rule != "":
		return fmt.Sprintf("%s: rule %q: %s", e.Field, e.Rule, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	case e.Rule != "":
		return fmt.Sprintf("rule %q: %s", e.Rule, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a configuration error rather than an
// I/O or decoding error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
