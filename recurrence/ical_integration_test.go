package recurrence

import (
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"github.com/cyp0633/libcaldora-yearmask/yearinfo"
)

func newRecurringEvent(rule string, start time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, "test-event")
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	if rule != "" {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule
		event.Props.Set(prop)
	}
	return event
}

func TestWeekdayRRuleRoundTrip(t *testing.T) {
	for w := yearinfo.Monday; w <= yearinfo.Sunday; w++ {
		assert.Equal(t, w, WeekdayFromRRule(WeekdayToRRule(w)), w.String())
	}
	assert.Equal(t, yearinfo.Sunday, WeekdayFromRRule(rrule.SU.Nth(2)))
	assert.Equal(t, rrule.MO, WeekdayToRRule(yearinfo.Weekday(9)))
}

func TestConfigFromROption(t *testing.T) {
	assert.Equal(t, yearinfo.Config{}, ConfigFromROption(nil))

	opt := &rrule.ROption{
		Freq:     rrule.YEARLY,
		Wkst:     rrule.TH,
		Byweekno: []int{-1, 1, 26},
	}
	cfg := ConfigFromROption(opt)
	assert.Equal(t, yearinfo.Thursday, cfg.WeekStart)
	assert.Equal(t, []int{-1, 1, 26}, cfg.WeekNumbers)

	// The config does not share the option's slice.
	opt.Byweekno[0] = 5
	assert.Equal(t, -1, cfg.WeekNumbers[0])
}

func TestConfigFromComponent(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rule       string
		wantRecurs bool
		wantCfg    yearinfo.Config
		wantErr    bool
	}{
		{
			name:       "no rrule",
			rule:       "",
			wantRecurs: false,
		},
		{
			name:       "week numbers with sunday start",
			rule:       "FREQ=YEARLY;WKST=SU;BYWEEKNO=1,-1",
			wantRecurs: true,
			wantCfg:    yearinfo.Config{WeekStart: yearinfo.Sunday, WeekNumbers: []int{1, -1}},
		},
		{
			name:       "default week start",
			rule:       "FREQ=YEARLY;BYWEEKNO=20",
			wantRecurs: true,
			wantCfg:    yearinfo.Config{WeekStart: yearinfo.Monday, WeekNumbers: []int{20}},
		},
		{
			name:    "invalid rrule",
			rule:    "FREQ=SOMETIMES",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := newRecurringEvent(tt.rule, start)
			cfg, recurs, err := ConfigFromComponent(event.Component)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to parse RRULE")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRecurs, recurs)
			if tt.wantRecurs {
				assert.Equal(t, tt.wantCfg.WeekStart, cfg.WeekStart)
				assert.Equal(t, tt.wantCfg.WeekNumbers, cfg.WeekNumbers)
			}
		})
	}
}

func TestStartYear(t *testing.T) {
	event := newRecurringEvent("", time.Date(2019, 12, 30, 8, 0, 0, 0, time.UTC))
	year, ok := StartYear(event.Component)
	assert.True(t, ok)
	assert.Equal(t, 2019, year)

	_, ok = StartYear(ical.NewEvent().Component)
	assert.False(t, ok)
}

func TestBuilder_ComponentContextsWithoutStart(t *testing.T) {
	builder := NewBuilder()
	defer builder.Close()

	event := ical.NewEvent()
	prop := ical.NewProp(ical.PropRecurrenceRule)
	prop.Value = "FREQ=YEARLY;BYWEEKNO=1"
	event.Props.Set(prop)

	_, err := builder.ComponentContexts(t.Context(), event.Component, 2)
	assert.Error(t, err)
}
