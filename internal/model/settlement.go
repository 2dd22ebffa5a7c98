package model

import "github.com/shopspring/decimal"

// SettlementResult is the full breakdown of one settlement. Amounts keep
// full precision; use Rounded for presentation.
type SettlementResult struct {
	TerminationType TerminationType `json:"termination_type"`
	NoticeType      NoticeType      `json:"notice_type"`

	ServiceMonths     int `json:"service_months"`
	CurrentYearMonths int `json:"current_year_months"`
	AccrualMonths     int `json:"accrual_months"`
	TerminationYear   int `json:"termination_year"`
	NoticeDays        int `json:"notice_days"`
	DaysWorked        int `json:"days_worked"`

	SalaryBalance    decimal.Decimal `json:"salary_balance"`
	NoticePay        decimal.Decimal `json:"notice_pay"`
	SalaryNoticeINSS decimal.Decimal `json:"salary_notice_inss"`
	SalaryNoticeIRRF decimal.Decimal `json:"salary_notice_irrf"`
	NetSalaryNotice  decimal.Decimal `json:"net_salary_notice"`

	Thirteenth     decimal.Decimal `json:"thirteenth"`
	ThirteenthINSS decimal.Decimal `json:"thirteenth_inss"`
	ThirteenthIRRF decimal.Decimal `json:"thirteenth_irrf"`
	NetThirteenth  decimal.Decimal `json:"net_thirteenth"`

	ProratedVacation       decimal.Decimal `json:"prorated_vacation"`
	ProratedVacationBonus  decimal.Decimal `json:"prorated_vacation_bonus"`
	ExpiredVacationPeriods int             `json:"expired_vacation_periods"`
	ExpiredVacation        decimal.Decimal `json:"expired_vacation"`
	ExpiredVacationBonus   decimal.Decimal `json:"expired_vacation_bonus"`

	FundBalance    decimal.Decimal `json:"fund_balance"`
	FundWithdrawal decimal.Decimal `json:"fund_withdrawal"`
	FundPenalty    decimal.Decimal `json:"fund_penalty"`

	DirectTotal decimal.Decimal `json:"direct_total"`
	FundTotal   decimal.Decimal `json:"fund_total"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// SalaryNoticeDeductions is the tax withheld on salary balance plus notice.
func (r SettlementResult) SalaryNoticeDeductions() decimal.Decimal {
	return r.SalaryNoticeINSS.Add(r.SalaryNoticeIRRF)
}

// ThirteenthDeductions is the tax withheld on the 13th salary.
func (r SettlementResult) ThirteenthDeductions() decimal.Decimal {
	return r.ThirteenthINSS.Add(r.ThirteenthIRRF)
}

// Rounded returns a copy with every amount rounded to centavos.
func (r SettlementResult) Rounded() SettlementResult {
	for _, amount := range r.amounts() {
		*amount = amount.Round(2)
	}
	return r
}

func (r *SettlementResult) amounts() []*decimal.Decimal {
	return []*decimal.Decimal{
		&r.SalaryBalance, &r.NoticePay, &r.SalaryNoticeINSS, &r.SalaryNoticeIRRF, &r.NetSalaryNotice,
		&r.Thirteenth, &r.ThirteenthINSS, &r.ThirteenthIRRF, &r.NetThirteenth,
		&r.ProratedVacation, &r.ProratedVacationBonus, &r.ExpiredVacation, &r.ExpiredVacationBonus,
		&r.FundBalance, &r.FundWithdrawal, &r.FundPenalty,
		&r.DirectTotal, &r.FundTotal, &r.GrandTotal,
	}
}
