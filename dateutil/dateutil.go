// Package dateutil provides the proleptic Gregorian, UTC normalized date
// primitives consumed when building per-year recurrence masks.
package dateutil

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

const (
	// MinYear and MaxYear bound the years Gregorian can represent. The upper
	// bound is the four digit year range of iCalendar DATE values, the lower
	// bound allows year 1 to refer to its prior year.
	MinYear = 0
	MaxYear = 9999

	secondsPerDay = 24 * 60 * 60

	// unixEpochDays is the number of days from 0001-01-01 to 1970-01-01.
	unixEpochDays = 719162
)

// ErrYearOutOfRange is returned for years outside [MinYear, MaxYear].
var ErrYearOutOfRange = errors.New("year out of range")

// Gregorian implements the date utility on top of the proleptic Gregorian
// calendar in UTC.
type Gregorian struct{}

// IsLeapYear reports whether year has 366 days.
func (Gregorian) IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// WeekdayOfJanuaryFirst returns the weekday of January 1st of year.
func (g Gregorian) WeekdayOfJanuaryFirst(year int) (time.Weekday, error) {
	if err := g.check(year); err != nil {
		return 0, err
	}
	return newYears(year).Weekday(), nil
}

// DaysBeforeYearStart returns the number of days between 0001-01-01 and
// January 1st of year. It is 0 for year 1 and negative for year 0.
func (g Gregorian) DaysBeforeYearStart(year int) (int, error) {
	if err := g.check(year); err != nil {
		return 0, err
	}
	return int(newYears(year).Unix()/secondsPerDay) + unixEpochDays, nil
}

func (Gregorian) check(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%d not in [%d, %d]: %w", year, MinYear, MaxYear, ErrYearOutOfRange)
	}
	return nil
}

func newYears(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
