package domain

import "strconv"

// ResultKind tags the type of value a solver produced.
type ResultKind string

const (
	// KindNumber marks a numeric score.
	KindNumber ResultKind = "number"
	// KindText marks a short textual answer, such as a password or a rendered screen.
	KindText ResultKind = "text"
)

// Result is the outcome of running one task of one day: either a numeric
// score or a short string. It is produced fresh on every run and never mutated.
type Result struct {
	Kind   ResultKind `json:"kind"`
	Number int64      `json:"number,omitempty"`
	Text   string     `json:"text,omitempty"`
}

// NumberResult wraps a numeric score in a Result.
func NumberResult(n int64) Result {
	return Result{Kind: KindNumber, Number: n}
}

// TextResult wraps a textual answer in a Result.
func TextResult(s string) Result {
	return Result{Kind: KindText, Text: s}
}

// String renders the result for display.
func (r Result) String() string {
	if r.Kind == KindText {
		return r.Text
	}
	return strconv.FormatInt(r.Number, 10)
}
