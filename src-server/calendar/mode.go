// Package calendar holds the calendar's date and grid logic: which dates a
// view shows, where events sit on the 24-hour grid, how the anchor date
// moves, and the view that ties them to an event store.
package calendar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownView    = errors.New("unknown view mode")
	ErrUnknownLayout  = errors.New("unknown layout mode")
	ErrUnknownDensity = errors.New("unknown density mode")
)

type ViewMode string

const (
	ViewDay      ViewMode = "day"
	ViewThreeDay ViewMode = "3d"
	ViewWeek     ViewMode = "week"
	ViewMonth    ViewMode = "month"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch v := ViewMode(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewDay, ViewThreeDay, ViewWeek, ViewMonth:
		return v, nil
	case "3-day", "3day":
		return ViewThreeDay, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// LayoutMode is the display density preset picked in the header.
type LayoutMode string

const (
	LayoutPlan  LayoutMode = "plan"
	LayoutFocus LayoutMode = "focus"
	LayoutRelax LayoutMode = "relax"
)

func ParseLayoutMode(s string) (LayoutMode, error) {
	switch l := LayoutMode(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutPlan, LayoutFocus, LayoutRelax:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

type DensityMode string

const (
	DensityRelaxed DensityMode = "relaxed"
	DensityCompact DensityMode = "compact"
)

func ParseDensityMode(s string) (DensityMode, error) {
	switch d := DensityMode(strings.ToLower(strings.TrimSpace(s))); d {
	case DensityRelaxed, DensityCompact:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDensity, s)
}
