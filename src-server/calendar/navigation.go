package calendar

import (
	"fmt"
	"time"
)

// NavigationState is the anchor date plus the view/layout/density the
// header controls. It is not safe for concurrent use; View serializes
// access to it.
type NavigationState struct {
	currentDate time.Time
	view        ViewMode
	layout      LayoutMode
	density     DensityMode

	// day of month the user navigated from, so stepping through a short
	// month and back lands on the 31st again
	dayOfMonth int

	now func() time.Time
	loc *time.Location
}

// NewNavigationState starts on today in loc, in day view. A nil now uses
// time.Now and a nil loc uses time.Local.
func NewNavigationState(now func() time.Time, loc *time.Location) *NavigationState {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	n := &NavigationState{
		view:    ViewDay,
		layout:  LayoutPlan,
		density: DensityRelaxed,
		now:     now,
		loc:     loc,
	}
	n.SetDate(now())
	return n
}

func (n *NavigationState) CurrentDate() time.Time { return n.currentDate }
func (n *NavigationState) View() ViewMode         { return n.view }
func (n *NavigationState) Layout() LayoutMode     { return n.layout }
func (n *NavigationState) Density() DensityMode   { return n.density }
func (n *NavigationState) Location() *time.Location {
	return n.loc
}

// SetDate moves the anchor to t's calendar date in the navigation location.
func (n *NavigationState) SetDate(t time.Time) {
	n.currentDate = StartOfDay(t.In(n.loc))
	n.dayOfMonth = n.currentDate.Day()
}

func (n *NavigationState) GoNext() error {
	return n.step(1)
}

func (n *NavigationState) GoPrevious() error {
	return n.step(-1)
}

func (n *NavigationState) GoToday() {
	n.SetDate(n.now())
}

// SetView keeps the anchor where it is.
func (n *NavigationState) SetView(view ViewMode) error {
	parsed, err := ParseViewMode(string(view))
	if err != nil {
		return fmt.Errorf("(*NavigationState).SetView: %w", err)
	}
	n.view = parsed
	return nil
}

func (n *NavigationState) SetLayout(layout LayoutMode) error {
	parsed, err := ParseLayoutMode(string(layout))
	if err != nil {
		return fmt.Errorf("(*NavigationState).SetLayout: %w", err)
	}
	n.layout = parsed
	return nil
}

func (n *NavigationState) SetDensity(density DensityMode) error {
	parsed, err := ParseDensityMode(string(density))
	if err != nil {
		return fmt.Errorf("(*NavigationState).SetDensity: %w", err)
	}
	n.density = parsed
	return nil
}

// VisibleDates is VisibleDates for the current anchor and view.
func (n *NavigationState) VisibleDates(weekStart time.Weekday) ([]time.Time, error) {
	return VisibleDates(n.currentDate, n.view, weekStart)
}

func (n *NavigationState) step(dir int) error {
	switch n.view {
	case ViewDay:
		n.SetDate(n.currentDate.AddDate(0, 0, dir))
	case ViewThreeDay:
		n.SetDate(n.currentDate.AddDate(0, 0, 3*dir))
	case ViewWeek:
		n.SetDate(n.currentDate.AddDate(0, 0, 7*dir))
	case ViewMonth:
		// calendar months, clamped to the last day of the target month
		y, m, _ := n.currentDate.Date()
		first := time.Date(y, m+time.Month(dir), 1, 0, 0, 0, 0, n.loc)
		day := min(n.dayOfMonth, DaysInMonth(first))
		n.currentDate = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, n.loc)
	default:
		return fmt.Errorf("(*NavigationState).step: %w: %q", ErrUnknownView, n.view)
	}
	return nil
}
