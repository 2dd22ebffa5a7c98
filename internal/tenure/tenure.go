// Package tenure counts service time in whole months under the rules used for
// the 13th salary, notice period and vacation accrual.
package tenure

import "time"

const (
	// A final month worked up to at least this day counts as complete.
	partialMonthDay = 15

	baseNoticeDays    = 30
	noticeDaysPerYear = 3
	maxNoticeDays     = 90

	monthsPerYear = 12
)

// MonthsElapsed is the calendar-month distance from start to end. With
// countPartialFinal set, an end on or after the 15th adds one month. The
// result is zero when end is not after start.
func MonthsElapsed(start, end time.Time, countPartialFinal bool) int {
	if !end.After(start) {
		return 0
	}

	months := (end.Year()-start.Year())*monthsPerYear + int(end.Month()) - int(start.Month())
	if countPartialFinal && end.Day() >= partialMonthDay {
		months++
	}
	return max(0, months)
}

// CurrentAccrualMonths counts the months of the vacation cycle that is still
// open at termination. Completed cycles are paid as expired vacation.
func CurrentAccrualMonths(hire, termination time.Time) int {
	cycles := MonthsElapsed(hire, termination, false) / monthsPerYear
	cycleStart := hire.AddDate(cycles, 0, 0)
	return min(MonthsElapsed(cycleStart, termination, true), monthsPerYear)
}

// NoticeDays is 30 days plus 3 per completed year, capped at 90.
func NoticeDays(monthsWorked int) int {
	years := max(0, monthsWorked) / monthsPerYear
	return min(baseNoticeDays+years*noticeDaysPerYear, maxNoticeDays)
}

// Durations bundles the month counts a settlement is derived from.
type Durations struct {
	// ServiceMonths is the raw calendar-month count of the whole contract.
	ServiceMonths int
	// CountedServiceMonths also counts a final month worked past the 14th.
	CountedServiceMonths int
	// CurrentYearMonths covers the termination year, from Jan 1 or hire.
	CurrentYearMonths int
	AccrualMonths     int
	TerminationYear   int
}

func Measure(hire, termination time.Time) Durations {
	yearStart := time.Date(termination.Year(), time.January, 1, 0, 0, 0, 0, termination.Location())
	from := yearStart
	if hire.After(yearStart) {
		from = hire
	}

	return Durations{
		ServiceMonths:        MonthsElapsed(hire, termination, false),
		CountedServiceMonths: MonthsElapsed(hire, termination, true),
		CurrentYearMonths:    MonthsElapsed(from, termination, true),
		AccrualMonths:        CurrentAccrualMonths(hire, termination),
		TerminationYear:      termination.Year(),
	}
}
