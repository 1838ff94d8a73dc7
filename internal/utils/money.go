package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatUSD renders an amount as "$1,234.50".
func FormatUSD(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return fmt.Sprintf("%s$%s.%s", sign, formatThousand(whole), frac)
}

// ParseMoney parses "$1,000.50" or "1000.5" into a decimal.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("invalid amount")
	}
	return decimal.NewFromString(s)
}

func formatThousand(digits string) string {
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
