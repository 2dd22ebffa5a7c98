package settlement

import (
	"fmt"

	"severance-engine/internal/model"
	"severance-engine/internal/tenure"
)

const maxDaysInMonth = 31

// Validate checks every rule on c and returns all violations, or nil.
func (s *Settler) Validate(c model.EmploymentCase) model.ValidationErrors {
	return s.validate(c, true)
}

// ValidateFields checks the rules that do not depend on the contract dates.
// Callers use it when a date could not be read, so the remaining problems are
// still reported.
func (s *Settler) ValidateFields(c model.EmploymentCase) model.ValidationErrors {
	return s.validate(c, false)
}

func (s *Settler) validate(c model.EmploymentCase, datesKnown bool) model.ValidationErrors {
	var errs model.ValidationErrors
	add := func(field, code, reason string) {
		errs = append(errs, model.ValidationError{Field: field, Code: code, Reason: reason})
	}

	if !c.GrossSalary.IsPositive() {
		add("gross_salary", model.CodeInvalidSalary, "salary must be greater than zero")
	}

	if !c.TerminationType.Valid() {
		add("termination_type", model.CodeInvalidTerminationType,
			fmt.Sprintf("unknown termination type %q", c.TerminationType))
	}

	if !c.NoticeType.Valid() {
		add("notice_type", model.CodeInvalidNoticeType,
			fmt.Sprintf("unknown notice type %q", c.NoticeType))
	}

	datesOrdered := datesKnown && c.HireDate.Before(c.TerminationDate)
	if datesKnown && !datesOrdered {
		add("termination_date", model.CodeInvalidDateRange, "hire date must be before termination date")
	}

	if c.DaysWorkedInFinalMonth < 0 || c.DaysWorkedInFinalMonth > maxDaysInMonth {
		add("days_worked_final_month", model.CodeInvalidDaysWorked, "days worked must be between 0 and 31")
	}

	if c.Dependents < 0 {
		add("dependents", model.CodeInvalidDependents, "dependents cannot be negative")
	}

	switch {
	case c.ExpiredVacationPeriods < 0:
		add("expired_vacation_periods", model.CodeInvalidExpiredVacation, "expired vacation periods cannot be negative")
	case c.ExpiredVacationPeriods > 0 && datesOrdered && s.Policy.RequireFullYearForExpiredVacation:
		if months := tenure.MonthsElapsed(c.HireDate, c.TerminationDate, false); months < monthsPerYear {
			add("expired_vacation_periods", model.CodeExpiredVacationTooSoon,
				fmt.Sprintf("expired vacation requires at least 12 months of service, found %d", months))
		}
	}

	return errs
}
