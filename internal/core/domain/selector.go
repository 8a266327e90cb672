// Package domain contains the core value types for the advent puzzle runner.
package domain

import "go.trai.ch/zerr"

const (
	// MinDay is the first day of the competition that can be selected.
	MinDay = 2
	// MaxDay is the last day of the competition that can be selected.
	MaxDay = 30
)

// Selector identifies a single puzzle run: a day of the competition and one
// of its two tasks.
type Selector struct {
	Day  int
	Task int
}

// Validate checks that the selector is within the accepted ranges.
// It does not check whether a solver is actually registered for the day.
func (s Selector) Validate() error {
	if s.Day < MinDay || s.Day > MaxDay {
		return zerr.With(ErrInvalidDay, "day", s.Day)
	}
	if s.Task != 1 && s.Task != 2 {
		return zerr.With(ErrInvalidTask, "task", s.Task)
	}
	return nil
}
