package line

import (
	"math"
	"strconv"
	"strings"
)

// String returns the equation of the line, e.g. "y = 2.0x - 3.0".
// A negative intercept is rendered with an explicit minus sign and its
// absolute value.
func (l Line) String() string {
	b := l.Intercept
	if b == 0 {
		b = 0 // normalize -0
	}
	if b >= 0 {
		return "y = " + formatNumber(l.Slope) + "x + " + formatNumber(b)
	}
	return "y = " + formatNumber(l.Slope) + "x - " + formatNumber(-b)
}

// formatNumber renders v as the shortest decimal that round-trips, always
// with a fractional digit ("2.0"). Magnitudes below 1e-3 or from 1e7 upward
// use computerized scientific notation ("1.0E7", "2.5E-4").
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	// 'E' yields "1.5E+07"; reshape into "1.5E7".
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}
	return withFraction(mant) + "E" + exp
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
