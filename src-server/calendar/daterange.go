package calendar

import (
	"fmt"
	"time"
)

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar dates, with b read in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	// day 0 of the next month is the last day of this one
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// StartOfWeek returns the first date of the week containing t, for a week
// beginning on weekStart.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// VisibleDates lists, in ascending order, the dates a view anchored at
// anchor renders.
func VisibleDates(anchor time.Time, view ViewMode, weekStart time.Weekday) ([]time.Time, error) {
	anchor = StartOfDay(anchor)

	switch view {
	case ViewDay:
		return []time.Time{anchor}, nil
	case ViewThreeDay:
		return consecutiveDays(anchor, 3), nil
	case ViewWeek:
		return consecutiveDays(StartOfWeek(anchor, weekStart), 7), nil
	case ViewMonth:
		first := anchor.AddDate(0, 0, 1-anchor.Day())
		return consecutiveDays(first, DaysInMonth(anchor)), nil
	default:
		return nil, fmt.Errorf("VisibleDates: %w: %q", ErrUnknownView, view)
	}
}

func consecutiveDays(first time.Time, n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range n {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}
