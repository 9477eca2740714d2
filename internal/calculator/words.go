package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	thousand = 1000
	lakh     = 100000
	crore    = 10000000
)

// Words spells out a rupee amount using the Indian numbering system.
//
// The amount is rounded to paise first. Examples:
//
//	Words(0)       = "Zero Only"
//	Words(100)     = "One Hundred Rupees Only"
//	Words(1500.50) = "One Thousand Five Hundred Rupees and Fifty Paise Only"
//
// Amounts of one crore and above are grouped in crores, repeating the unit
// for larger magnitudes ("One Thousand Crore", "Ten Lakh Crore Crore").
// There is no upper bound.
func Words(amount decimal.Decimal) string {
	rounded := amount.Abs().Round(2)
	if rounded.IsZero() {
		return "Zero Only"
	}

	rupees := rounded.Truncate(0)
	paise := rounded.Sub(rupees).Shift(2).IntPart()

	var parts []string
	if amount.IsNegative() {
		parts = append(parts, "Minus")
	}
	parts = append(parts, inWords(rupees)...)
	parts = append(parts, "Rupees")
	if paise > 0 {
		parts = append(parts, "and")
		parts = append(parts, belowCrore(paise)...)
		parts = append(parts, "Paise")
	}
	parts = append(parts, "Only")

	return strings.Join(parts, " ")
}

var crores = decimal.NewFromInt(crore)

// inWords converts a non-negative whole amount into its word tokens.
// Crore quotients are kept as decimals so no magnitude overflows.
func inWords(n decimal.Decimal) []string {
	if n.LessThan(crores) {
		return belowCrore(n.IntPart())
	}
	q, r := n.QuoRem(crores, 0)
	words := append(inWords(q), "Crore")
	return append(words, belowCrore(r.IntPart())...)
}

// belowCrore converts 0 <= n < one crore. Zero yields no tokens.
func belowCrore(n int64) []string {
	switch {
	case n == 0:
		return nil
	case n < 20:
		return []string{ones[n]}
	case n < 100:
		return append([]string{tens[n/10]}, belowCrore(n%10)...)
	case n < thousand:
		return append([]string{ones[n/100], "Hundred"}, belowCrore(n%100)...)
	case n < lakh:
		return group(n, thousand, "Thousand")
	default:
		return group(n, lakh, "Lakh")
	}
}

func group(n, unit int64, name string) []string {
	words := append(belowCrore(n/unit), name)
	return append(words, belowCrore(n%unit)...)
}
