package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with DefaultPrecision.
func FormatNumber(v float64) string {
	return formatPrecision(v, DefaultPrecision)
}

// formatPrecision prints integers as-is and rounds everything else to
// precision significant digits before printing the shortest form.
func formatPrecision(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v != math.Trunc(v) {
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', precision, 64), 64)
		if err == nil {
			v = rounded
		}
	}
	return shortest(v)
}

// shortest prints v in decimal notation between 1e-6 and 1e21 and in
// exponent notation (1e+21, 1.5e-7) outside that range.
func shortest(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
