package recurrence

import (
	"fmt"
	"slices"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/cyp0633/libcaldora-yearmask/yearinfo"
)

var rruleWeekdays = [yearinfo.DaysPerWeek]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// WeekdayFromRRule converts an rrule weekday, ignoring any ordinal
func WeekdayFromRRule(w rrule.Weekday) yearinfo.Weekday {
	return yearinfo.Weekday(w.Day())
}

// WeekdayToRRule converts a weekday to its rrule representation
func WeekdayToRRule(w yearinfo.Weekday) rrule.Weekday {
	if !w.Valid() {
		return rrule.MO
	}
	return rruleWeekdays[w]
}

// ConfigFromROption extracts the week start (WKST) and requested week
// numbers (BYWEEKNO) of a parsed recurrence rule
func ConfigFromROption(opt *rrule.ROption) yearinfo.Config {
	if opt == nil {
		return yearinfo.Config{}
	}
	return yearinfo.Config{
		WeekStart:   WeekdayFromRRule(opt.Wkst),
		WeekNumbers: slices.Clone(opt.Byweekno),
	}
}

// ConfigFromComponent extracts the year mask configuration from the RRULE of
// an iCal component. The boolean result is false when there is no RRULE.
func ConfigFromComponent(comp *ical.Component) (yearinfo.Config, bool, error) {
	rruleProp := comp.Props.Get(ical.PropRecurrenceRule)
	if rruleProp == nil || rruleProp.Value == "" {
		return yearinfo.Config{}, false, nil
	}

	opt, err := rrule.StrToROption(rruleProp.Value)
	if err != nil {
		return yearinfo.Config{}, false, fmt.Errorf("failed to parse RRULE '%s': %w", rruleProp.Value, err)
	}
	return ConfigFromROption(opt), true, nil
}

// StartYear returns the UTC year of the component's DTSTART
func StartYear(comp *ical.Component) (int, bool) {
	dtstart, err := comp.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	if err != nil || dtstart.IsZero() {
		return 0, false
	}
	return dtstart.UTC().Year(), true
}
