package yearinfo

import (
	"slices"

	"github.com/samber/mo"

	"github.com/cyp0633/libcaldora-yearmask/internal/tables"
)

type (
	// MonthMask maps day offsets to 1-based months.
	MonthMask []int
	// DayMask maps day offsets to days of the month, counted from the start
	// of the month (1..31) or from its end (-31..-1).
	DayMask []int
)

// Masks are the per-day lookup tables of one year. Every mask is indexed by
// the zero-based day of the year and extends a week past December 31st.
type Masks struct {
	Month   MonthMask
	PosDay  DayMask
	NegDay  DayMask
	Weekday WeekdayMask
	// WeekNumber is absent when the configuration requests no week numbers,
	// in which case week numbers do not constrain the year.
	WeekNumber mo.Option[WeekNumberMask]
}

// NewMasks builds the masks of the year described by facts.
func NewMasks(facts Facts, cfg Config) Masks {
	set := tables.For(facts.Length == Leap)
	weekdays := AlignWeekdays(facts.FirstWeekday)

	m := Masks{
		Month:      slices.Clone(MonthMask(set.Month)),
		PosDay:     slices.Clone(DayMask(set.PosDay)),
		NegDay:     slices.Clone(DayMask(set.NegDay)),
		Weekday:    weekdays,
		WeekNumber: mo.None[WeekNumberMask](),
	}
	if cfg.HasWeekNumbers() {
		m.WeekNumber = mo.Some(WeekNumbers(facts, cfg, weekdays))
	}
	return m
}

func (m Masks) MonthOf(offset int) int { return m.Month[offset] }
func (m Masks) DayOf(offset int) int { return m.PosDay[offset] }
func (m Masks) NegDayOf(offset int) int { return m.NegDay[offset] }
func (m Masks) WeekdayOf(offset int) Weekday { return m.Weekday[offset] }

// InWeekNumbers reports whether the day at offset satisfies the week number
// constraint. It is always true when there is no such constraint.
func (m Masks) InWeekNumbers(offset int) bool {
	mask, ok := m.WeekNumber.Get()
	if !ok {
		return true
	}
	return mask[offset] != 0
}
