// Package tax implements the two progressive withholding schedules applied
// to severance pay: the slice-by-slice social security contribution (INSS)
// and the rate-plus-deduction income tax (IRRF).
package tax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidTable = errors.New("invalid bracket table")

// Bracket is one row of a progressive schedule. Deduction is only read by
// marginal tables.
type Bracket struct {
	UpperBound decimal.Decimal
	Unbounded  bool
	Rate       decimal.Decimal
	Deduction  decimal.Decimal
}

// Covers reports whether amount falls at or below the bracket's bound.
func (b Bracket) Covers(amount decimal.Decimal) bool {
	return b.Unbounded || amount.LessThanOrEqual(b.UpperBound)
}

func bounded(upper, rate string) Bracket {
	return Bracket{
		UpperBound: decimal.RequireFromString(upper),
		Rate:       decimal.RequireFromString(rate),
	}
}

func validateBrackets(brackets []Bracket, requireUnboundedTop bool) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: no brackets", ErrInvalidTable)
	}
	prev := decimal.Zero
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Deduction.IsNegative() {
			return fmt.Errorf("%w: bracket %d has a negative rate or deduction", ErrInvalidTable, i)
		}
		if b.Unbounded {
			if i != len(brackets)-1 {
				return fmt.Errorf("%w: unbounded bracket %d is not the last one", ErrInvalidTable, i)
			}
			continue
		}
		if !b.UpperBound.GreaterThan(prev) {
			return fmt.Errorf("%w: bound %s of bracket %d is not above %s", ErrInvalidTable, b.UpperBound, i, prev)
		}
		prev = b.UpperBound
	}
	if requireUnboundedTop && !brackets[len(brackets)-1].Unbounded {
		return fmt.Errorf("%w: last bracket must be unbounded", ErrInvalidTable)
	}
	return nil
}
