package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var ErrUnparsableDate = errors.New("can't understand the date")

// NewWhenParser returns the english natural-language date parser.
func NewWhenParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseDate accepts 2006-01-02, RFC 3339 or natural language ("tomorrow",
// "next friday") relative to now. Plain dates are read in now's location.
func ParseDate(w *when.Parser, input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("ParseDate: %w: empty input", ErrUnparsableDate)
	}
	if t, err := time.ParseInLocation(time.DateOnly, input, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.In(now.Location()), nil
	}

	result, err := w.Parse(input, now)
	switch {
	case err != nil:
		return time.Time{}, fmt.Errorf("ParseDate: %w: %w", ErrUnparsableDate, err)
	case result == nil:
		return time.Time{}, fmt.Errorf("ParseDate: %w: %q", ErrUnparsableDate, input)
	}
	return result.Time.In(now.Location()), nil
}
