package engine

import (
	"strconv"
	"strings"
)

// defaultBudget is assumed when the message states no usable AED amount.
const defaultBudget = 5000

// parseBudget extracts a whole AED amount from an already lower-cased
// message. It takes everything before the first "aed", keeps only the digits,
// and parses the result; any failure falls back to defaultBudget. Digits after
// the currency marker are deliberately ignored ("aed 3000" still defaults).
func parseBudget(lower string) int {
	idx := strings.Index(lower, "aed")
	if idx < 0 {
		return defaultBudget
	}

	var digits strings.Builder
	for _, r := range lower[:idx] {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	budget, err := strconv.Atoi(digits.String())
	if err != nil {
		return defaultBudget
	}
	return budget
}
