package field

import (
	"math"
	"strconv"
)

// FormatFloat renders v in fixed-point notation with as many decimals as the
// shortest form of its fractional part needs, and never fewer than one.
// 12.5 gives "12.5", 1 gives "1.0", -1.5 gives "-1.50".
func FormatFloat(v float64) string {
	_, frac := math.Modf(v)
	prec := max(len(strconv.FormatFloat(frac, 'f', -1, 64)), 3) - 2

	return strconv.FormatFloat(v, 'f', prec, 64)
}
