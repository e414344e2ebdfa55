package utils

import "strconv"

// FormatAmount renders a dollar amount the way the storefront does: no
// trailing zeros, no thousands separators ("40", "12.5").
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
