package tax

import "github.com/shopspring/decimal"

// CumulativeTable taxes each slice of the base at its own bracket's rate and
// clamps the sum to Ceiling.
type CumulativeTable struct {
	Brackets []Bracket
	Ceiling  decimal.Decimal
}

// SocialSecurity is the INSS employee contribution table.
var SocialSecurity = CumulativeTable{
	Brackets: []Bracket{
		bounded("1518.00", "0.075"),
		bounded("2793.88", "0.09"),
		bounded("4190.93", "0.12"),
		bounded("8157.41", "0.14"),
	},
	Ceiling: decimal.RequireFromString("951.63"),
}

func (t CumulativeTable) Validate() error {
	return validateBrackets(t.Brackets, false)
}

// Compute returns the contribution owed on base. Non-positive bases owe
// nothing.
func (t CumulativeTable) Compute(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := base
	previous := decimal.Zero
	for _, b := range t.Brackets {
		slice := remaining
		if !b.Unbounded {
			slice = decimal.Min(remaining, b.UpperBound.Sub(previous))
			previous = b.UpperBound
		}
		total = total.Add(slice.Mul(b.Rate))
		remaining = remaining.Sub(slice)
		if !remaining.IsPositive() {
			break
		}
	}

	return decimal.Min(total, t.Ceiling)
}

// INSS computes the contribution with the SocialSecurity table.
func INSS(base decimal.Decimal) decimal.Decimal {
	return SocialSecurity.Compute(base)
}
