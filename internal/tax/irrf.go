package tax

import "github.com/shopspring/decimal"

// MarginalTable applies the rate of the bracket the whole adjusted base falls
// in and subtracts that bracket's precomputed deduction.
type MarginalTable struct {
	Brackets           []Bracket
	DependentAllowance decimal.Decimal
}

// IncomeTax is the monthly IRRF withholding table.
var IncomeTax = MarginalTable{
	Brackets: []Bracket{
		withDeduction(bounded("2259.20", "0"), "0"),
		withDeduction(bounded("2826.65", "0.075"), "169.44"),
		withDeduction(bounded("3751.05", "0.15"), "381.44"),
		withDeduction(bounded("4664.68", "0.225"), "662.77"),
		{
			Unbounded: true,
			Rate:      decimal.RequireFromString("0.275"),
			Deduction: decimal.RequireFromString("896.00"),
		},
	},
	DependentAllowance: decimal.RequireFromString("189.59"),
}

func withDeduction(b Bracket, deduction string) Bracket {
	b.Deduction = decimal.RequireFromString(deduction)
	return b
}

func (t MarginalTable) Validate() error {
	return validateBrackets(t.Brackets, true)
}

// Compute returns the tax withheld on base after the per-dependent allowance.
func (t MarginalTable) Compute(base decimal.Decimal, dependents int) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}

	adjusted := base.Sub(t.DependentAllowance.Mul(decimal.NewFromInt(int64(dependents))))
	if !adjusted.IsPositive() {
		return decimal.Zero
	}

	for _, b := range t.Brackets {
		if b.Covers(adjusted) {
			return decimal.Max(decimal.Zero, adjusted.Mul(b.Rate).Sub(b.Deduction))
		}
	}

	// A table without an unbounded top bracket falls back to its last row.
	if n := len(t.Brackets); n > 0 {
		top := t.Brackets[n-1]
		return decimal.Max(decimal.Zero, adjusted.Mul(top.Rate).Sub(top.Deduction))
	}
	return decimal.Zero
}

// IRRF computes the withholding with the IncomeTax table.
func IRRF(base decimal.Decimal, dependents int) decimal.Decimal {
	return IncomeTax.Compute(base, dependents)
}
