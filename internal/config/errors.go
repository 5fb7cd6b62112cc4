package config

import (
	"errors"
	"fmt"
)

// ErrSettingNotFound indicates the setting path doesn't exist.
var ErrSettingNotFound = errors.New("setting not found")

// TypeError is returned when a value cannot be converted to a setting's
// type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// ValidationError describes a setting whose value is out of range or
// malformed.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Field, e.Message, e.Value)
}
