// internal/params/errors.go
package params

import "fmt"

// RangeError reports a numeric option outside its declared bounds.
type RangeError struct {
	Name  string
	Value string
	Bound string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s (%s) must be %s", e.Name, e.Value, e.Bound)
}

// DomainError reports an enumeration option set to a value outside its
// declared choice set.
type DomainError struct {
	Name    string
	Value   string
	Choices []string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s %q (choose from %v)", e.Name, e.Value, e.Choices)
}

// TypeMismatchError reports a token that cannot be coerced to the
// option's declared type.
type TypeMismatchError struct {
	Name  string
	Token string
	Want  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as %s", e.Name, e.Token, e.Want)
}

// ConfigurationError reports a missing mandatory resource or an
// unrecoverable cross-field inconsistency. Fatal to assembly.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// Configf builds a ConfigurationError from a format string.
func Configf(format string, a ...any) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, a...)}
}
