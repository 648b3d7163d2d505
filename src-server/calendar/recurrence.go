package calendar

import (
	"log/slog"
	"time"

	"planboard/src-server/model"

	"github.com/xyedo/rrule"
)

var weekdayToRRule = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// WeeklyRule builds the weekly rule behind an event's repeat days, anchored
// at its start. It returns nil for one-off events.
func WeeklyRule(e model.Event, loc *time.Location) (*rrule.RRule, error) {
	if !e.IsRecurring() {
		return nil, nil
	}
	weekdays := make([]rrule.Weekday, 0, len(e.RepeatDays))
	for _, day := range e.RepeatDays {
		if wd, ok := day.Weekday(); ok {
			weekdays = append(weekdays, weekdayToRRule[wd])
		}
	}
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   e.Start.In(loc),
		Byweekday: weekdays,
	})
}

// OccurrencesOn returns the events to lay out on date. One-off events pass
// through untouched. A repeating event shows up as itself on its own start
// date, and as a copy shifted onto date (same id and duration) when one of
// its repeat days falls on date after the start.
func OccurrencesOn(events []model.Event, date time.Time) []model.Event {
	loc := date.Location()
	dayStart := StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !e.IsRecurring() || SameDay(date, e.Start) {
			out = append(out, e)
			continue
		}
		if e.Start.After(dayEnd) {
			continue
		}
		rule, err := WeeklyRule(e, loc)
		if err != nil {
			slog.Warn("can't build repeat rule, showing the event once", "event", e.ID, "error", err)
			out = append(out, e)
			continue
		}
		for _, occurrence := range rule.Between(dayStart, dayEnd, true) {
			shifted := e.Clone()
			shifted.Start = occurrence
			shifted.End = occurrence.Add(e.Duration())
			out = append(out, shifted)
		}
	}
	return out
}
