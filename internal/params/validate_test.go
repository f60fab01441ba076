// internal/params/validate_test.go
package params

import (
	"errors"
	"testing"
)

func TestValidateIntBounds(t *testing.T) {
	cases := []struct {
		name     string
		value    int
		min, max *int
		ok       bool
	}{
		{"unbounded", -42, nil, nil, true},
		{"at min", 0, IntPtr(0), nil, true},
		{"below min", -1, IntPtr(0), nil, false},
		{"at max", 10, nil, IntPtr(10), true},
		{"above max", 11, nil, IntPtr(10), false},
		{"inside both", 5, IntPtr(0), IntPtr(10), true},
	}
	for _, c := range cases {
		err := ValidateInt("nproc", c.value, c.min, c.max)
		if (err == nil) != c.ok {
			t.Errorf("%s: got err=%v, want ok=%v", c.name, err, c.ok)
		}
	}
}

func TestValidateFloatBounds(t *testing.T) {
	lo, hi := FloatPtr(0.001), FloatPtr(0.5)
	if err := ValidateFloat("distance", 0.001, lo, hi); err != nil {
		t.Errorf("lower bound should be inclusive: %v", err)
	}
	if err := ValidateFloat("distance", 0.5, lo, hi); err != nil {
		t.Errorf("upper bound should be inclusive: %v", err)
	}
	if err := ValidateFloat("distance", 0.6, lo, hi); err == nil {
		t.Errorf("expected range error above maximum")
	}
	if err := ValidateFloat("distance", 0.0009, lo, hi); err == nil {
		t.Errorf("expected range error below minimum")
	}
}

func TestValidateReturnsRangeError(t *testing.T) {
	err := ValidateFloat("distance", 0.6, nil, FloatPtr(0.5))
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("want *RangeError, got %T (%v)", err, err)
	}
	if re.Name != "distance" {
		t.Errorf("error should carry the option name, got %q", re.Name)
	}
}
