package netlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InvalidNumericInputError reports an unparseable value string together with
// the offending text.
type InvalidNumericInputError struct {
	Text string
}

func (e *InvalidNumericInputError) Error() string {
	return fmt.Sprintf("invalid numeric input: %q", e.Text)
}

var suffixMap = map[string]float64{
	"meg": 1e6,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
}

// "meg" must win over the single-letter fallback, so it comes first.
var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:e[-+]?\d+)?)(meg|[pnumk])?$`)

// ParseValue converts an engineering-notation string such as "47u", "1k" or
// "2.2meg" to its base SI value. Case is folded, surrounding space and the
// unit names f, h and ohm are ignored, and an empty string parses to 0.
func ParseValue(val string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(val))
	if s == "" {
		return 0, nil
	}

	s = strings.TrimSuffix(s, "ohm")
	if len(s) > 1 {
		s = strings.TrimSuffix(s, "f")
		s = strings.TrimSuffix(s, "h")
	}

	matches := valueRe.FindStringSubmatch(s)
	if matches == nil {
		return 0, &InvalidNumericInputError{Text: val}
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, &InvalidNumericInputError{Text: val}
	}

	if matches[2] != "" {
		num *= suffixMap[matches[2]]
	}
	return num, nil
}
