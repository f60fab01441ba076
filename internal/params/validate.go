// internal/params/validate.go
package params

import "strconv"

// ValidateInt checks value against the inclusive bounds; a nil bound
// means unbounded on that side. Returns a *RangeError on violation.
func ValidateInt(name string, value int, min, max *int) error {
	if min != nil && value < *min {
		return &RangeError{Name: name, Value: strconv.Itoa(value), Bound: "≥ " + strconv.Itoa(*min)}
	}
	if max != nil && value > *max {
		return &RangeError{Name: name, Value: strconv.Itoa(value), Bound: "≤ " + strconv.Itoa(*max)}
	}
	return nil
}

// ValidateFloat is ValidateInt for the floating-point domain.
func ValidateFloat(name string, value float64, min, max *float64) error {
	if min != nil && value < *min {
		return &RangeError{Name: name, Value: fmtFloat(value), Bound: "≥ " + fmtFloat(*min)}
	}
	if max != nil && value > *max {
		return &RangeError{Name: name, Value: fmtFloat(value), Bound: "≤ " + fmtFloat(*max)}
	}
	return nil
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// IntPtr and FloatPtr build optional bounds for Spec tables.
func IntPtr(v int) *int           { return &v }
func FloatPtr(v float64) *float64 { return &v }
