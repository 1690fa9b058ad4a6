package netlist

import (
	"errors"
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10m", 0.01},
		{"47u", 0.000047},
		{"1k", 1000.0},
		{"", 0.0},
		{"  ", 0.0},
		{"100", 100.0},
		{"2.2meg", 2.2e6},
		{"3p", 3e-12},
		{"5n", 5e-9},
		{"-0.5", -0.5},
		{".5", 0.5},
		{"1e3", 1000.0},
		{"1.5e-6", 1.5e-6},
		// unit-name letters are stripped before suffix matching
		{"10uF", 1e-5},
		{"100mH", 0.1},
		{"47ohm", 47.0},
		{"1kohm", 1000.0},
		{"2.2megohm", 2.2e6},
		// case folding: "M" is milli, "MEG" is mega
		{"10M", 0.01},
		{"10MEG", 1e7},
	}

	for _, tc := range cases {
		got, err := ParseValue(tc.in)
		if err != nil {
			t.Errorf("ParseValue(%q): unexpected error %v", tc.in, err)
			continue
		}
		if math.Abs(got-tc.want) > math.Abs(tc.want)*1e-12 {
			t.Errorf("ParseValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseValueInvalid(t *testing.T) {
	for _, in := range []string{"abc", "10x", "k", "1..2", "meg", "10kk"} {
		_, err := ParseValue(in)
		if err == nil {
			t.Errorf("ParseValue(%q): expected error", in)
			continue
		}
		var invalid *InvalidNumericInputError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseValue(%q): error = %v, want InvalidNumericInputError", in, err)
			continue
		}
		if invalid.Text != in {
			t.Errorf("ParseValue(%q): offending text = %q", in, invalid.Text)
		}
	}
}
