package widget

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/filipedpsilva/counter/errs"
)

// ParseNumber reads the text of a number input. Surrounding whitespace is
// ignored and an empty field counts as 0.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.NewBadInputError(fmt.Sprintf("%q is not a finite number", raw))
	}
	return v, nil
}

// FormatNumber renders v the way a browser prints a number: shortest form,
// no exponent for integers below 1e21, and an exponent without padding
// ("1e-7", "1e+21").
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	case abs >= 1e-6 && abs < 1e21:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return trimExponent(strconv.FormatFloat(v, 'g', -1, 64))
	}
}

// trimExponent drops the leading zeros Go pads the exponent with.
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + exp[:1] + digits
}
