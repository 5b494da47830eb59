package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatIDR renders an amount as Indonesian rupiah, with dots as thousands
// separators and no decimal places, e.g. 1234567.89 -> "Rp 1.234.568".
func FormatIDR(amount float64) string {
	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))

	digits := fmt.Sprintf("%d", rounded)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := "Rp " + strings.Join(groups, ".")
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatPercent renders a ratio change as a signed percentage with two decimals.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%+.2f%%", value)
}
