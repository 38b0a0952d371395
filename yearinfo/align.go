package yearinfo

import (
	"slices"

	"github.com/cyp0633/libcaldora-yearmask/internal/tables"
)

// alignedLength is the length of every aligned weekday mask: a leap year plus
// one week of look-ahead.
const alignedLength = tables.MaxYearDays + tables.Slack

// WeekdayMask maps day offsets to weekdays.
type WeekdayMask []Weekday

// AlignWeekdays returns the weekday mask of a year starting on first, so
// that mask[0] == first. The mask is freshly allocated and long enough for a
// leap year plus a week of slack.
func AlignWeekdays(first Weekday) WeekdayMask {
	cycle := tables.WeekdayCycle()
	start := slices.Index(cycle, mod(int(first), DaysPerWeek))
	aligned := make(WeekdayMask, alignedLength)
	for i := range aligned {
		aligned[i] = Weekday(cycle[(start+i)%len(cycle)])
	}
	return aligned
}
