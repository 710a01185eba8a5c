package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency memformat angka dengan pemisah ribuan dan 2 desimal,
// mis. 15000.5 -> "15.000,50". Dipakai untuk pesan notifikasi staff.
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	joined := strings.Join(result, ".") + "," + decimalPart
	if negative {
		return "-" + joined
	}
	return joined
}
