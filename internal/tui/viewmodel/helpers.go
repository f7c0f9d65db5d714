package viewmodel

import (
	"fmt"
	"strings"
)

// FormatAmount formats a currency value at display precision.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatDateInput normalizes free-text date typing into dd/mm/yyyy as the
// user goes: non-digits are stripped and slashes inserted after the day
// and month groups, capped at eight digits. It is a typing mask, not
// calendar validation.
func FormatDateInput(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	numbers := digits.String()
	if len(numbers) > 8 {
		numbers = numbers[:8]
	}

	switch {
	case len(numbers) <= 2:
		return numbers
	case len(numbers) <= 4:
		return numbers[:2] + "/" + numbers[2:]
	default:
		return numbers[:2] + "/" + numbers[2:4] + "/" + numbers[4:]
	}
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
