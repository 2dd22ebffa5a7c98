// Package export renders a settlement for people and files: the pt-BR
// breakdown shown on screen, the CSV sheet and the PDF summary.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatBRL renders amount rounded to centavos with Brazilian separators,
// e.g. 1.234,56.
func FormatBRL(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + groupThousands(whole) + "," + cents
}

// groupThousands inserts pt-BR thousand separators into a run of digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
		p := message.NewPrinter(language.BrazilianPortuguese)
		return p.Sprint(number.Decimal(n))
	}

	// beyond uint64
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseBRL reads an amount written either with Brazilian separators
// ("3.000,50") or as a plain decimal ("3000.50").
func ParseBRL(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
