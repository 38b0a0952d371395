package yearinfo

import (
	"slices"

	"github.com/samber/mo"
)

// WeekNumberMask marks, with 1, the day offsets that fall in one of the
// requested week numbers. Its length is the year length plus a week.
type WeekNumberMask []int

// Layout describes how the weeks of a year line up with its days.
type Layout struct {
	// NaturalOffset is the offset of the first week-start day of the year.
	NaturalOffset int
	// WeekOffset is the offset at which week 1 starts within the year. It is
	// 0 when week 1 began in the prior year.
	WeekOffset int
	// Span is the number of days attributed to the year's weeks.
	Span int
	// WeekCount is 52 or 53.
	WeekCount int
}

// WeekLayout computes the week layout of a year of the given length that
// starts on first, with weeks starting on weekStart. Week 1 is the first
// week with at least four days in the year.
func WeekLayout(length YearLength, first, weekStart Weekday) Layout {
	l := Layout{
		NaturalOffset: mod(int(weekStart)+DaysPerWeek-int(first), DaysPerWeek),
	}
	if l.NaturalOffset >= 4 {
		// Week 1 started in the prior year.
		l.Span = mod(int(first)-int(weekStart), DaysPerWeek) + int(length)
	} else {
		l.Span = int(length) - l.NaturalOffset
		l.WeekOffset = l.NaturalOffset
	}
	l.WeekCount = l.Span/DaysPerWeek + (l.Span%DaysPerWeek)/4
	return l
}

// WeekStart returns the offset of the first day of week n. It may be
// negative for n < 1 and at or beyond the year length for n > WeekCount.
func (l Layout) WeekStart(n int) int {
	if n == 1 {
		return l.WeekOffset
	}
	at := l.WeekOffset + (n-1)*DaysPerWeek
	if l.WeekOffset != l.NaturalOffset {
		// Week 1 was short, later weeks start on the week-start day.
		at -= DaysPerWeek - l.NaturalOffset
	}
	return at
}

// Normalize resolves a negative week number against the week count, -1
// being the last week. Positive numbers are returned unchanged.
func (l Layout) Normalize(weekno int) int {
	if weekno < 0 {
		return weekno + l.WeekCount + 1
	}
	return weekno
}

// Patch writes Values into a WeekNumberMask starting at offset At.
type Patch struct {
	At     int
	Values []int
}

func (p Patch) apply(mask WeekNumberMask) {
	if p.At < 0 || p.At >= len(mask) {
		return
	}
	copy(mask[p.At:], p.Values)
}

// newPatch marks up to a week of days from at, ending before the next day
// whose weekday is terminus.
func newPatch(at int, terminus Weekday, weekdays WeekdayMask) Patch {
	values := make([]int, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		values = append(values, 1)
		next := at + i + 1
		if next >= len(weekdays) || weekdays[next] == terminus {
			break
		}
	}
	return Patch{At: at, Values: values}
}

// weekPatcher computes the patches for one year and one configuration.
type weekPatcher struct {
	facts     Facts
	requested []int
	weekStart Weekday
	weekdays  WeekdayMask
	layout    Layout
}

func newWeekPatcher(facts Facts, cfg Config, weekdays WeekdayMask) *weekPatcher {
	weekStart := Weekday(mod(int(cfg.WeekStart), DaysPerWeek))
	return &weekPatcher{
		facts:     facts,
		requested: cfg.WeekNumbers,
		weekStart: weekStart,
		weekdays:  weekdays,
		layout:    WeekLayout(facts.Length, facts.FirstWeekday, weekStart),
	}
}

// nextYearFirstWeek covers the days at the end of the year that belong to
// week 1 of the next year.
func (p *weekPatcher) nextYearFirstWeek() mo.Option[Patch] {
	if !slices.Contains(p.requested, 1) {
		return mo.None[Patch]()
	}
	at := p.layout.WeekStart(p.layout.WeekCount + 1)
	if at >= int(p.facts.Length) {
		return mo.None[Patch]()
	}
	return mo.Some(newPatch(at, p.weekStart, p.weekdays))
}

func (p *weekPatcher) centralWeeks() []mo.Option[Patch] {
	patches := make([]mo.Option[Patch], 0, len(p.requested))
	for _, weekno := range p.requested {
		n := p.layout.Normalize(weekno)
		if n < 1 || n > p.layout.WeekCount {
			patches = append(patches, mo.None[Patch]())
			continue
		}
		patches = append(patches, mo.Some(newPatch(p.layout.WeekStart(n), p.weekStart, p.weekdays)))
	}
	return patches
}

// priorYearFinalWeek covers the days at the start of the year that belong
// to the last week of the prior year.
func (p *weekPatcher) priorYearFinalWeek() mo.Option[Patch] {
	if p.layout.WeekOffset == 0 {
		return mo.None[Patch]()
	}
	prior := WeekLayout(p.facts.PriorLength, p.facts.PriorFirstWeekday, p.weekStart)
	if !slices.Contains(p.requested, -1) && !slices.Contains(p.requested, prior.WeekCount) {
		return mo.None[Patch]()
	}
	// The prior year's final week ends where this year's week 1 begins.
	return mo.Some(newPatch(0, p.weekStart, p.weekdays))
}

// patches returns every patch in application order.
func (p *weekPatcher) patches() []mo.Option[Patch] {
	all := make([]mo.Option[Patch], 0, len(p.requested)+2)
	all = append(all, p.nextYearFirstWeek())
	all = append(all, p.centralWeeks()...)
	all = append(all, p.priorYearFinalWeek())
	return all
}

// WeekNumbers returns the week number mask of the year described by facts
// for the week numbers and week start in cfg. weekdays must be the aligned
// weekday mask of the same year. Out of range and duplicate week numbers
// are ignored.
func WeekNumbers(facts Facts, cfg Config, weekdays WeekdayMask) WeekNumberMask {
	mask := make(WeekNumberMask, int(facts.Length)+DaysPerWeek)
	for _, patch := range newWeekPatcher(facts, cfg, weekdays).patches() {
		if p, ok := patch.Get(); ok {
			p.apply(mask)
		}
	}
	return mask
}
