package tenure

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthsElapsed(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		partial bool
		want    int
	}{
		{"same month before 15th", "2024-03-01", "2024-03-10", true, 0},
		{"same month from 15th", "2024-03-01", "2024-03-15", true, 1},
		{"raw ignores day", "2024-03-01", "2024-03-31", false, 0},
		{"across years", "2022-01-10", "2024-06-20", false, 29},
		{"across years partial", "2022-01-10", "2024-06-20", true, 30},
		{"end before start", "2024-06-20", "2024-01-10", true, 0},
		{"december to january", "2023-12-20", "2024-01-05", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsElapsed(date(tt.start), date(tt.end), tt.partial))
		})
	}
}

func TestMonthsElapsedSameDateIsZero(t *testing.T) {
	for _, d := range []string{"2024-01-01", "2024-02-15", "2024-06-30"} {
		assert.Zero(t, MonthsElapsed(date(d), date(d), true), d)
		assert.Zero(t, MonthsElapsed(date(d), date(d), false), d)
	}
}

func TestMonthsElapsedFifteenthAddsOne(t *testing.T) {
	start := date("2021-08-03")
	for _, month := range []string{"2021-11", "2022-02", "2024-06"} {
		on14 := MonthsElapsed(start, date(month+"-14"), true)
		on15 := MonthsElapsed(start, date(month+"-15"), true)
		assert.Equal(t, on14+1, on15, month)
	}
}

func TestCurrentAccrualMonths(t *testing.T) {
	tests := []struct {
		name        string
		hire        string
		termination string
		want        int
	}{
		{"first cycle", "2024-01-10", "2024-06-20", 6},
		{"third cycle", "2022-01-10", "2024-06-20", 6},
		{"on anniversary", "2022-03-20", "2024-03-20", 0},
		{"eleven months and a partial one", "2023-03-20", "2024-02-28", 12},
		{"short contract", "2024-05-02", "2024-05-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentAccrualMonths(date(tt.hire), date(tt.termination)))
		})
	}
}

func TestCurrentAccrualMonthsStaysInRange(t *testing.T) {
	hire := date("2019-02-17")
	for end := hire; end.Before(date("2025-01-01")); end = end.AddDate(0, 0, 11) {
		got := CurrentAccrualMonths(hire, end)
		if got < 0 || got > 12 {
			t.Fatalf("accrual months %d out of range at %s", got, end.Format("2006-01-02"))
		}
	}
}

func TestNoticeDays(t *testing.T) {
	assert.Equal(t, 30, NoticeDays(0))
	assert.Equal(t, 30, NoticeDays(11))
	assert.Equal(t, 33, NoticeDays(12))
	assert.Equal(t, 36, NoticeDays(24))
	assert.Equal(t, 36, NoticeDays(30))
	assert.Equal(t, 90, NoticeDays(240))
	assert.Equal(t, 90, NoticeDays(1200))
	assert.Equal(t, 30, NoticeDays(-5))
}

func TestMeasure(t *testing.T) {
	got := Measure(date("2022-01-10"), date("2024-06-20"))
	want := Durations{
		ServiceMonths:        29,
		CountedServiceMonths: 30,
		CurrentYearMonths:    6,
		AccrualMonths:        6,
		TerminationYear:      2024,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Measure() mismatch (-want +got):\n%s", diff)
	}
}

func TestMeasureHiredInTerminationYear(t *testing.T) {
	got := Measure(date("2024-03-05"), date("2024-09-14"))
	assert.Equal(t, 6, got.ServiceMonths)
	assert.Equal(t, 6, got.CurrentYearMonths)
	assert.Equal(t, 6, got.AccrualMonths)
}
