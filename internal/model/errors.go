package model

import "strings"

// Validation codes reported by the settlement validator.
const (
	CodeInvalidSalary          = "INVALID_SALARY"
	CodeInvalidTerminationType = "INVALID_TERMINATION_TYPE"
	CodeInvalidNoticeType      = "INVALID_NOTICE_TYPE"
	CodeInvalidDateRange       = "INVALID_DATE_RANGE"
	CodeInvalidDaysWorked      = "INVALID_DAYS_WORKED"
	CodeInvalidExpiredVacation = "INVALID_EXPIRED_VACATION"
	CodeInvalidDependents      = "INVALID_DEPENDENTS"
	CodeExpiredVacationTooSoon = "EXPIRED_VACATION_REQUIRES_FULL_YEAR"
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field  string `json:"field"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors carries every violation found for a case.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return "invalid employment case: " + strings.Join(parts, "; ")
}

// Has reports whether any violation carries the given code.
func (errs ValidationErrors) Has(code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}
