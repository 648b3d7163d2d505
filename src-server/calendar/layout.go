package calendar

import (
	"math"
	"sort"
	"time"

	"planboard/src-server/model"
)

const (
	DefaultPixelsPerHour = 60
	DefaultMinimumHeight = 30

	minutesPerDay = 24 * 60
)

// LayoutEngine positions events on a 24-hour vertical grid.
//
// Overlapping events are not packed into columns: every placement spans the
// full width of its day column and later blocks are drawn over earlier ones.
type LayoutEngine struct {
	PixelsPerHour float64
	MinimumHeight float64
}

// NewLayoutEngine falls back to the defaults for non-positive values.
func NewLayoutEngine(pixelsPerHour, minimumHeight float64) LayoutEngine {
	if pixelsPerHour <= 0 {
		pixelsPerHour = DefaultPixelsPerHour
	}
	if minimumHeight <= 0 {
		minimumHeight = DefaultMinimumHeight
	}
	return LayoutEngine{PixelsPerHour: pixelsPerHour, MinimumHeight: minimumHeight}
}

type Placement struct {
	Event  model.Event `json:"event"`
	Top    float64     `json:"top"`
	Height float64     `json:"height"`
}

// Layout keeps the events starting on date's calendar day (in date's
// location) and computes their block geometry, ordered by start time.
//
// An event ending on a later day is cut off at midnight, so it only ever
// appears on its start date. A negative duration gets the minimum height.
func (l LayoutEngine) Layout(events []model.Event, date time.Time) []Placement {
	loc := date.Location()
	placements := make([]Placement, 0)
	for _, e := range events {
		start := e.Start.In(loc)
		if !SameDay(date, start) {
			continue
		}
		end := e.End.In(loc)

		startMinutes := start.Hour()*60 + start.Minute()
		endMinutes := end.Hour()*60 + end.Minute()
		if end.After(start) && !SameDay(start, end) {
			endMinutes = minutesPerDay
		}
		duration := float64(endMinutes - startMinutes)

		placements = append(placements, Placement{
			Event:  e,
			Top:    l.Offset(start),
			Height: math.Max(duration/60*l.PixelsPerHour, l.MinimumHeight),
		})
	}
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Event.Start.Before(placements[j].Event.Start)
	})
	return placements
}

// Offset is the distance from the top of the grid for t's time of day; it
// also places the current-time indicator.
func (l LayoutEngine) Offset(t time.Time) float64 {
	return (float64(t.Hour()) + float64(t.Minute())/60) * l.PixelsPerHour
}

func (l LayoutEngine) GridHeight() float64 {
	return 24 * l.PixelsPerHour
}
