// Package tables holds the static per-day templates shared by every year:
// a repeating weekday cycle and the month / day-of-month masks for 365 and
// 366 day years. Tables are built on first use and never mutated afterwards,
// so callers must treat the returned slices as read-only.
package tables

import (
	"sync"

	"cloudeng.io/datetime"
)

const (
	// Slack is the number of entries appended after the last day of a year so
	// that readers may look up to one week past December 31st.
	Slack = 7

	// MaxYearDays is the length of a leap year.
	MaxYearDays = 366

	// CycleLength is the length of the weekday cycle. It covers any rotation
	// (at most 6) plus a full leap year and its slack.
	CycleLength = 7 * 55
)

// Set is the month and day-of-month template for one kind of year.
type Set struct {
	// Month holds the 1-based month of each day offset.
	Month []int
	// PosDay holds the 1-based day of the month of each day offset.
	PosDay []int
	// NegDay holds the day of the month counted from the end of the month,
	// -1 being the last day.
	NegDay []int
	// MonthRange holds the cumulative day count at the start of each month,
	// MonthRange[12] is the length of the year.
	MonthRange []int
}

var (
	weekdayCycle = sync.OnceValue(func() []int {
		cycle := make([]int, CycleLength)
		for i := range cycle {
			cycle[i] = i % 7
		}
		return cycle
	})

	// 2023 and 2024 are used as representative normal and leap years.
	normalSet = sync.OnceValue(func() Set { return build(2023) })
	leapSet   = sync.OnceValue(func() Set { return build(2024) })
)

// WeekdayCycle returns the repeating weekday cycle, 0 being Monday.
func WeekdayCycle() []int {
	return weekdayCycle()
}

// For returns the template set for a leap or a normal year.
func For(leap bool) Set {
	if leap {
		return leapSet()
	}
	return normalSet()
}

func build(year int) Set {
	days := 365
	if datetime.IsLeap(year) {
		days = MaxYearDays
	}
	s := Set{
		Month:      make([]int, 0, days+Slack),
		PosDay:     make([]int, 0, days+Slack),
		NegDay:     make([]int, 0, days+Slack),
		MonthRange: make([]int, 13),
	}
	for m := 1; m <= 12; m++ {
		n := int(datetime.DaysInMonth(year, datetime.Month(m)))
		s.MonthRange[m] = s.MonthRange[m-1] + n
		for d := 1; d <= n; d++ {
			s.Month = append(s.Month, m)
			s.PosDay = append(s.PosDay, d)
			s.NegDay = append(s.NegDay, d-n-1)
		}
	}
	// The slack continues into January of the following year.
	for d := 1; d <= Slack; d++ {
		s.Month = append(s.Month, 1)
		s.PosDay = append(s.PosDay, d)
		s.NegDay = append(s.NegDay, d-32)
	}
	return s
}
