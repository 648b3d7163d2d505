package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type EventCategory string

const (
	EventCategoryProductivity EventCategory = "productivity"
	EventCategoryHobby        EventCategory = "hobby"
	EventCategoryPersonal     EventCategory = "personal"
)

func (c EventCategory) Valid() bool {
	switch c {
	case EventCategoryProductivity, EventCategoryHobby, EventCategoryPersonal:
		return true
	}
	return false
}

// RepeatDay is a weekday marker used by the event editor: M T W TH F S SU.
type RepeatDay string

const (
	RepeatMonday    RepeatDay = "M"
	RepeatTuesday   RepeatDay = "T"
	RepeatWednesday RepeatDay = "W"
	RepeatThursday  RepeatDay = "TH"
	RepeatFriday    RepeatDay = "F"
	RepeatSaturday  RepeatDay = "S"
	RepeatSunday    RepeatDay = "SU"
)

var repeatDayToWeekday = map[RepeatDay]time.Weekday{
	RepeatMonday:    time.Monday,
	RepeatTuesday:   time.Tuesday,
	RepeatWednesday: time.Wednesday,
	RepeatThursday:  time.Thursday,
	RepeatFriday:    time.Friday,
	RepeatSaturday:  time.Saturday,
	RepeatSunday:    time.Sunday,
}

// Weekday returns the time.Weekday for d; ok is false for unknown markers.
func (d RepeatDay) Weekday() (time.Weekday, bool) {
	wd, ok := repeatDayToWeekday[d]
	return wd, ok
}

// EventInput is everything the create/edit modal submits; the id is
// assigned by the store.
type EventInput struct {
	Title       string        `json:"title"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Category    EventCategory `json:"category"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Color       string        `json:"color,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	IsCompleted bool          `json:"isCompleted,omitempty"`
	RepeatDays  []RepeatDay   `json:"repeatDays,omitempty"`
}

type Event struct {
	ID string `json:"id"` // required
	EventInput
}

// Normalize trims free text and dedupes tags and repeat days, keeping the
// first occurrence of each.
func (e *EventInput) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Location = strings.TrimSpace(e.Location)

	tags := make([]string, 0, len(e.Tags))
	for _, tag := range e.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	e.Tags = tags
	if len(e.Tags) == 0 {
		e.Tags = nil
	}

	days := make([]RepeatDay, 0, len(e.RepeatDays))
	for _, day := range e.RepeatDays {
		day = RepeatDay(strings.ToUpper(strings.TrimSpace(string(day))))
		if slices.Contains(days, day) {
			continue
		}
		days = append(days, day)
	}
	e.RepeatDays = days
	if len(e.RepeatDays) == 0 {
		e.RepeatDays = nil
	}
}

// Validate rejects blank titles, unknown categories, unknown repeat days
// and ranges where end is not strictly after start. Events are allowed to
// cross midnight.
func (e *EventInput) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return ErrEmptyTitle
	case !e.Category.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	case e.Start.IsZero() || e.End.IsZero():
		return fmt.Errorf("%w: start and end are required", ErrInvalidTimeRange)
	case !e.End.After(e.Start):
		return ErrInvalidTimeRange
	}
	for _, day := range e.RepeatDays {
		if _, ok := day.Weekday(); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidRepeatDay, day)
		}
	}
	return nil
}

func (e *EventInput) IsRecurring() bool {
	return len(e.RepeatDays) > 0
}

func (e *EventInput) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Clone returns a deep copy so callers can't mutate store-owned slices.
func (e Event) Clone() Event {
	e.Tags = slices.Clone(e.Tags)
	e.RepeatDays = slices.Clone(e.RepeatDays)
	return e
}
