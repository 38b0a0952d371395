package yearinfo

import (
	"time"

	"github.com/cyp0633/libcaldora-yearmask/internal/tables"
)

// YearLength is the number of days in a year.
type YearLength int

const (
	Normal YearLength = 365
	Leap   YearLength = 366
)

func lengthOf(leap bool) YearLength {
	if leap {
		return Leap
	}
	return Normal
}

// DateUtility supplies the calendar primitives year facts are derived from.
// Implementations return an error for years they cannot represent.
type DateUtility interface {
	IsLeapYear(year int) bool
	WeekdayOfJanuaryFirst(year int) (time.Weekday, error)
	DaysBeforeYearStart(year int) (int, error)
}

// Facts holds the calendar facts of a single year together with the few
// facts about its neighbours that week numbering needs.
type Facts struct {
	Year            int
	Length          YearLength
	FirstWeekday    Weekday // weekday of January 1st
	FirstDayOrdinal int     // days before January 1st since 0001-01-01
	// MonthDayRange holds the day offset at which each month starts,
	// MonthDayRange[12] equals Length. Shared, do not modify.
	MonthDayRange []int

	PriorLength       YearLength
	PriorFirstWeekday Weekday
	NextLength        YearLength
}

// NewFacts builds the facts for year. Any failure of cal is returned as a
// *ConfigurationError.
func NewFacts(year int, cal DateUtility) (Facts, error) {
	first, err := cal.WeekdayOfJanuaryFirst(year)
	if err != nil {
		return Facts{}, &ConfigurationError{Year: year, Err: err}
	}
	priorFirst, err := cal.WeekdayOfJanuaryFirst(year - 1)
	if err != nil {
		return Facts{}, &ConfigurationError{Year: year, Err: err}
	}
	ordinal, err := cal.DaysBeforeYearStart(year)
	if err != nil {
		return Facts{}, &ConfigurationError{Year: year, Err: err}
	}

	leap := cal.IsLeapYear(year)
	return Facts{
		Year:              year,
		Length:            lengthOf(leap),
		FirstWeekday:      WeekdayFromTime(first),
		FirstDayOrdinal:   ordinal,
		MonthDayRange:     tables.For(leap).MonthRange,
		PriorLength:       lengthOf(cal.IsLeapYear(year - 1)),
		PriorFirstWeekday: WeekdayFromTime(priorFirst),
		NextLength:        lengthOf(cal.IsLeapYear(year + 1)),
	}, nil
}

// WeekdayOf returns the weekday of the given day offset.
func (f Facts) WeekdayOf(offset int) Weekday {
	return Weekday(mod(int(f.FirstWeekday)+offset, DaysPerWeek))
}
