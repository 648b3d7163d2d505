package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an update, delete or select targets an id
	// that is not in the collection.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is the parent of every validation error below.
	ErrInvalid = errors.New("invalid")

	ErrEmptyTitle       = fmt.Errorf("%w: title is blank", ErrInvalid)
	ErrEmptyText        = fmt.Errorf("%w: text is blank", ErrInvalid)
	ErrEmptyContent     = fmt.Errorf("%w: content is blank", ErrInvalid)
	ErrInvalidTimeRange = fmt.Errorf("%w: end must be after start", ErrInvalid)
	ErrInvalidCategory  = fmt.Errorf("%w: unknown category", ErrInvalid)
	ErrInvalidPriority  = fmt.Errorf("%w: unknown priority", ErrInvalid)
	ErrInvalidRepeatDay = fmt.Errorf("%w: unknown repeat day", ErrInvalid)
	ErrEmptyLabel       = fmt.Errorf("%w: label is blank", ErrInvalid)
	ErrTooManyLabels    = fmt.Errorf("%w: a note can have at most %d labels", ErrInvalid, MaxNoteLabels)
)
