package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/cyp0633/libcaldora-yearmask/recurrence"
	"github.com/cyp0633/libcaldora-yearmask/yearinfo"
)

const (
	yearsPerEvent = 3 // Number of years to expand for each event
	productID     = "-//libcaldora//Year Mask Example//EN"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	config := recurrence.DefaultBuilderConfig
	config.Logger = logger
	builder := recurrence.NewBuilderWithConfig(config)
	defer builder.Close()

	cal := setupCalendar()

	// Print the calendar being expanded
	var sb strings.Builder
	if err := ical.NewEncoder(&sb).Encode(cal); err != nil {
		log.Fatalf("Failed to encode calendar: %v", err)
	}
	fmt.Print(sb.String())

	for _, event := range cal.Events() {
		summary, _ := event.Props.Text(ical.PropSummary)
		contexts, err := builder.ComponentContexts(context.Background(), event.Component, yearsPerEvent)
		if err != nil {
			log.Printf("Error expanding %q: %v", summary, err)
			continue
		}
		if contexts == nil {
			log.Printf("%q does not recur", summary)
			continue
		}

		start, err := event.DateTimeStart(time.UTC)
		if err != nil {
			log.Printf("Error reading DTSTART of %q: %v", summary, err)
			continue
		}
		weekday := yearinfo.WeekdayFromTime(start.Weekday())

		for _, yc := range contexts {
			log.Printf("%q in %d: %s", summary, yc.Facts.Year, strings.Join(matchingDates(yc, weekday), ", "))
		}
	}

	stats := builder.Stats()
	logger.Info("cache statistics",
		"entries", stats.TotalEntries,
		"hits", stats.Hits,
		"misses", stats.Misses)
}

// matchingDates lists the days of the year on weekday that fall in the
// requested weeks
func matchingDates(yc *yearinfo.Context, weekday yearinfo.Weekday) []string {
	var dates []string
	for offset := 0; offset < int(yc.Facts.Length); offset++ {
		if yc.Masks.WeekdayOf(offset) != weekday || !yc.Matches(offset) {
			continue
		}
		day := time.Date(yc.Facts.Year, time.January, 1+offset, 0, 0, 0, 0, time.UTC)
		dates = append(dates, day.Format(time.DateOnly))
	}
	return dates
}

// setupCalendar creates a calendar with a few sample events
func setupCalendar() *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	cal.Children = append(cal.Children,
		createEvent("Kickoff", time.Date(2021, 1, 4, 9, 0, 0, 0, time.UTC), "FREQ=YEARLY;BYWEEKNO=1;BYDAY=MO;WKST=MO"),
		createEvent("Year-end review", time.Date(2020, 12, 27, 15, 0, 0, 0, time.UTC), "FREQ=YEARLY;BYWEEKNO=-1;BYDAY=SU;WKST=SU"),
		createEvent("Midsummer", time.Date(2024, 6, 21, 18, 0, 0, 0, time.UTC), "FREQ=YEARLY;BYWEEKNO=25,26;BYDAY=FR"),
		createEvent("One-off", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), ""),
	)
	return cal
}

// createEvent is a helper function to create a calendar event
func createEvent(summary string, start time.Time, rule string) *ical.Component {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.New().String())
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(time.Hour))
	if rule != "" {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule
		event.Props.Set(prop)
	}
	return event.Component
}
