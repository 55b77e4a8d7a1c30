package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a captured numeral using the comma-as-thousands
// convention ("12,345.67"). A numeral that does not survive the exact
// decimal parse is a non-match, not an error.
func ParseAmount(text string) (decimal.Decimal, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if clean == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(clean)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}

// ParseLatinAmount parses numerals written with dot-as-thousands and
// comma-as-decimal ("1.000.000,50"), the convention used by the
// Latin-American institutions.
func ParseLatinAmount(text string) (decimal.Decimal, bool) {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	clean = strings.Trim(clean, "$ ")
	if clean == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(clean)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}

// ParseMaskedAmount parses numerals whose leading digits may be hidden by
// masking characters ("**30.16", "***0.00"). Masked integer digits cannot be
// reconstructed, so a masked integer part normalizes to 0 and only the
// visible fraction survives: "**30.16" parses as 0.16.
func ParseMaskedAmount(text string) (decimal.Decimal, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if clean == "" {
		return decimal.Zero, false
	}
	intPart, fracPart, hasFrac := strings.Cut(clean, ".")
	if strings.ContainsAny(intPart, "*Xx") {
		intPart = "0"
	}
	if strings.ContainsAny(fracPart, "*Xx") {
		return decimal.Zero, false
	}
	if hasFrac {
		clean = intPart + "." + fracPart
	} else {
		clean = intPart
	}
	return ParseAmount(clean)
}

// Last4 normalizes a masked or full account/card capture down to its last
// four visible digits. Shorter captures are returned as-is.
func Last4(text string) string {
	var digits []rune
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}
