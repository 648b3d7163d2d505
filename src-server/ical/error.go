package ical

import "errors"

var (
	ErrMissingID = errors.New("event id not set")
	ErrZeroTime  = errors.New("event start or end not set")
)
