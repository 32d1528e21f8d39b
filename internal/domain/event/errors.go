package event

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrUnknownStatus    = errors.New("unknown event status")
	ErrEmptyID          = errors.New("event id is required")
)
