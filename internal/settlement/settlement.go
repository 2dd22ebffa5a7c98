// Package settlement composes the severance breakdown of an employment case
// from the tenure counts and the withholding tables.
package settlement

import (
	"github.com/shopspring/decimal"

	"severance-engine/internal/model"
	"severance-engine/internal/tax"
	"severance-engine/internal/tenure"
)

const monthsPerYear = 12

var (
	daysPerMonth         = decimal.NewFromInt(30)
	monthsInYear         = decimal.NewFromInt(monthsPerYear)
	vacationBonusDivisor = decimal.NewFromInt(3)
)

// Policy holds the settlement rules that are not fixed by the tax tables.
type Policy struct {
	// FundRate is the monthly FGTS deposit as a share of salary.
	FundRate decimal.Decimal
	// RequireFullYearForExpiredVacation rejects expired vacation periods on
	// contracts shorter than 12 months.
	RequireFullYearForExpiredVacation bool
}

func DefaultPolicy() Policy {
	return Policy{
		FundRate:                          decimal.RequireFromString("0.08"),
		RequireFullYearForExpiredVacation: true,
	}
}

// Settler computes settlements. It holds no mutable state and is safe for
// concurrent use.
type Settler struct {
	SocialSecurity tax.CumulativeTable
	IncomeTax      tax.MarginalTable
	Policy         Policy
}

func New(socialSecurity tax.CumulativeTable, incomeTax tax.MarginalTable, policy Policy) *Settler {
	return &Settler{
		SocialSecurity: socialSecurity,
		IncomeTax:      incomeTax,
		Policy:         policy,
	}
}

// Default uses the built-in tables and policy.
func Default() *Settler {
	return New(tax.SocialSecurity, tax.IncomeTax, DefaultPolicy())
}

// Settle validates c and computes its settlement with the default Settler.
func Settle(c model.EmploymentCase) (model.SettlementResult, error) {
	return Default().Settle(c)
}

// Settle validates c and computes its settlement. A rejected case returns
// model.ValidationErrors and a zero result.
func (s *Settler) Settle(c model.EmploymentCase) (model.SettlementResult, error) {
	if errs := s.Validate(c); len(errs) > 0 {
		return model.SettlementResult{}, errs
	}
	return s.Compose(c, tenure.Measure(c.HireDate, c.TerminationDate)), nil
}

// Compose derives every line item from a validated case and its durations.
func (s *Settler) Compose(c model.EmploymentCase, d tenure.Durations) model.SettlementResult {
	rule, _ := ruleFor(c.TerminationType)
	salary := c.GrossSalary
	daily := salary.Div(daysPerMonth)
	monthly := salary.Div(monthsInYear)

	r := model.SettlementResult{
		TerminationType:        c.TerminationType,
		NoticeType:             c.NoticeType,
		ServiceMonths:          d.ServiceMonths,
		CurrentYearMonths:      d.CurrentYearMonths,
		AccrualMonths:          d.AccrualMonths,
		TerminationYear:        d.TerminationYear,
		DaysWorked:             c.DaysWorkedInFinalMonth,
		ExpiredVacationPeriods: c.ExpiredVacationPeriods,
	}

	if rule.NoticeEligible && c.NoticeType == model.NoticeIndemnified {
		r.NoticeDays = tenure.NoticeDays(d.CountedServiceMonths)
		r.NoticePay = daily.Mul(decimal.NewFromInt(int64(r.NoticeDays)))
	}

	r.Thirteenth = monthly.Mul(decimal.NewFromInt(int64(d.CurrentYearMonths)))

	r.ProratedVacation = monthly.Mul(decimal.NewFromInt(int64(d.AccrualMonths)))
	r.ProratedVacationBonus = r.ProratedVacation.Div(vacationBonusDivisor)

	r.SalaryBalance = daily.Mul(decimal.NewFromInt(int64(c.DaysWorkedInFinalMonth)))

	r.ExpiredVacation = salary.Mul(decimal.NewFromInt(int64(c.ExpiredVacationPeriods)))
	r.ExpiredVacationBonus = r.ExpiredVacation.Div(vacationBonusDivisor)

	salaryNotice := r.SalaryBalance.Add(r.NoticePay)
	r.SalaryNoticeINSS, r.SalaryNoticeIRRF = s.withhold(salaryNotice, c.Dependents)
	r.NetSalaryNotice = salaryNotice.Sub(r.SalaryNoticeINSS).Sub(r.SalaryNoticeIRRF)

	r.ThirteenthINSS, r.ThirteenthIRRF = s.withhold(r.Thirteenth, c.Dependents)
	r.NetThirteenth = r.Thirteenth.Sub(r.ThirteenthINSS).Sub(r.ThirteenthIRRF)

	r.FundBalance = salary.Mul(s.Policy.FundRate).Mul(decimal.NewFromInt(int64(d.ServiceMonths)))
	r.FundWithdrawal = r.FundBalance.Mul(rule.WithdrawalShare)
	r.FundPenalty = r.FundBalance.Mul(rule.PenaltyShare)

	r.DirectTotal = decimal.Sum(r.NetThirteenth,
		r.ProratedVacation, r.ProratedVacationBonus,
		r.ExpiredVacation, r.ExpiredVacationBonus,
		r.NetSalaryNotice)
	r.FundTotal = r.FundWithdrawal.Add(r.FundPenalty)
	r.GrandTotal = r.DirectTotal.Add(r.FundTotal)

	return r
}

// withhold returns INSS on base and IRRF on base net of that INSS.
func (s *Settler) withhold(base decimal.Decimal, dependents int) (inss, irrf decimal.Decimal) {
	inss = s.SocialSecurity.Compute(base)
	irrf = s.IncomeTax.Compute(base.Sub(inss), dependents)
	return inss, irrf
}
