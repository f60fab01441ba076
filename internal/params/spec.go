// internal/params/spec.go
package params

import "strconv"

// Kind is the declared type of an option.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "choice"
	default:
		return "string"
	}
}

// Spec declares one recognized option: its type, default, and value
// domain. Specs are immutable once declared; every option has exactly one.
type Spec struct {
	Name    string
	Aliases []string
	Usage   string
	Kind    Kind

	Default any

	// Numeric domain; nil means unbounded on that side.
	Min, Max *float64

	// Enum domain.
	Choices []string

	// Positional options are arguments, not flags.
	Positional bool
}

// Coerce parses a raw token according to the declared kind. It returns a
// *TypeMismatchError for unparseable tokens and a *DomainError for enum
// values outside the choice set.
func (s Spec) Coerce(token string) (any, error) {
	switch s.Kind {
	case KindInt:
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, &TypeMismatchError{Name: s.Name, Token: token, Want: "int"}
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &TypeMismatchError{Name: s.Name, Token: token, Want: "float"}
		}
		return v, nil
	case KindBool:
		v, err := strconv.ParseBool(token)
		if err != nil {
			return nil, &TypeMismatchError{Name: s.Name, Token: token, Want: "bool"}
		}
		return v, nil
	case KindEnum:
		for _, c := range s.Choices {
			if token == c {
				return token, nil
			}
		}
		return nil, &DomainError{Name: s.Name, Value: token, Choices: s.Choices}
	default:
		return token, nil
	}
}
