package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDay is returned when the requested day is outside [MinDay, MaxDay].
	ErrInvalidDay = zerr.New("invalid day: expected a value between 2 and 30")

	// ErrInvalidTask is returned when the requested task is not 1 or 2.
	ErrInvalidTask = zerr.New("invalid task: expected 1 or 2")

	// ErrUnknownDay is returned when the day is in range but no solver is registered for it.
	ErrUnknownDay = zerr.New("no solver registered for day")

	// ErrMalformedInput is returned when a puzzle input does not match the shape
	// the day's solver expects.
	ErrMalformedInput = zerr.New("malformed puzzle input")
)
