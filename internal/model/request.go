package model

import "github.com/shopspring/decimal"

type CalculationRequest struct {
	TenantID string    `json:"tenant_id"`
	Case     CaseInput `json:"case"`
}

// CaseInput is the wire form of an EmploymentCase. Dates are YYYY-MM-DD.
type CaseInput struct {
	GrossSalary            decimal.Decimal `json:"gross_salary"`
	HireDate               string          `json:"hire_date"`
	TerminationDate        string          `json:"termination_date"`
	DaysWorkedInFinalMonth int             `json:"days_worked_final_month"`
	TerminationType        string          `json:"termination_type"`
	NoticeType             string          `json:"notice_type,omitempty"`
	ExpiredVacationPeriods int             `json:"expired_vacation_periods"`
	Dependents             int             `json:"dependents"`
}
