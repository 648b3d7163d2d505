// Package ical writes the event collection as an RFC 5545 VCALENDAR so it
// can be subscribed to from other calendar apps.
//
// Only export is supported. Times are written in UTC, recurring events get
// a weekly RRULE built from their repeat days.
//
//	cal := ical.NewCalendar("Planboard")
//	cal.AddEvents(events...)
//	out, _ := cal.ToIcal()
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"

	"planboard/src-server/model"

	ics "github.com/arran4/golang-ical"
)

const DefaultProdID = "-//planboard//calendar export//EN"

var propertyCompleted = ics.ComponentPropertyExtended("X-PLANBOARD-COMPLETED")

type Calendar struct {
	name        string
	description string
	events      []model.Event
	now         func() time.Time
}

func NewCalendar(name string) *Calendar {
	return &Calendar{
		name: name,
		now:  time.Now,
	}
}

func (c *Calendar) SetDescription(description string) {
	c.description = description
}

// SetClock overrides the DTSTAMP source.
func (c *Calendar) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Calendar) AddEvents(events ...model.Event) {
	c.events = append(c.events, events...)
}

// ToIcal renders the whole calendar.
func (c *Calendar) ToIcal() (string, error) {
	var sb strings.Builder
	if err := c.Serialize(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Serialize streams the calendar to w with CRLF line endings. Long content
// lines are folded at 75 octets.
func (c *Calendar) Serialize(w io.Writer) error {
	cal, err := c.build()
	if err != nil {
		return fmt.Errorf("(*Calendar).Serialize: %w", err)
	}
	if err := cal.SerializeTo(w, ics.WithNewLineWindows); err != nil {
		return fmt.Errorf("(*Calendar).Serialize: %w", err)
	}
	return nil
}

func (c *Calendar) build() (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetProductId(DefaultProdID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)
	if c.name != "" {
		cal.SetXWRCalName(c.name)
	}
	if c.description != "" {
		cal.SetXWRCalDesc(plainText(c.description))
	}

	stamp := c.now()
	for _, e := range c.events {
		if err := addEvent(cal, e, stamp); err != nil {
			return nil, fmt.Errorf("event %q: %w", e.ID, err)
		}
	}
	return cal, nil
}

func addEvent(cal *ics.Calendar, e model.Event, stamp time.Time) error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return ErrZeroTime
	}

	vevent := cal.AddEvent(e.ID)
	vevent.SetDtStampTime(stamp)
	vevent.SetStartAt(e.Start)
	vevent.SetEndAt(e.End)
	vevent.SetSummary(plainText(e.Title))
	if e.Description != "" {
		vevent.SetDescription(plainText(e.Description))
	}
	if e.Location != "" {
		vevent.SetLocation(plainText(e.Location))
	}
	if e.Color != "" {
		vevent.SetColor(e.Color)
	}

	// one property per value, a shared list would get its commas escaped
	vevent.AddCategory(string(e.Category))
	for _, tag := range e.Tags {
		vevent.AddCategory(tag)
	}

	if rule := WeeklyRRule(e.RepeatDays); rule != "" {
		vevent.AddRrule(rule)
	}
	if e.IsCompleted {
		vevent.SetProperty(propertyCompleted, "TRUE")
	}
	return nil
}

// plainText folds CRLF into LF so the TEXT escaper emits a single \n.
func plainText(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

var byDay = map[model.RepeatDay]string{
	model.RepeatMonday:    "MO",
	model.RepeatTuesday:   "TU",
	model.RepeatWednesday: "WE",
	model.RepeatThursday:  "TH",
	model.RepeatFriday:    "FR",
	model.RepeatSaturday:  "SA",
	model.RepeatSunday:    "SU",
}

// WeeklyRRule returns the RRULE value for the repeat days, or "" when
// there are none. Unknown days are skipped.
func WeeklyRRule(days []model.RepeatDay) string {
	parts := make([]string, 0, len(days))
	for _, day := range days {
		if code, ok := byDay[day]; ok {
			parts = append(parts, code)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "FREQ=WEEKLY;BYDAY=" + strings.Join(parts, ",")
}
