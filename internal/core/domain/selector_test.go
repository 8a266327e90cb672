package domain_test

import (
	"errors"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
)

func TestSelector_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sel     domain.Selector
		wantErr error
	}{
		{name: "first valid day", sel: domain.Selector{Day: 2, Task: 1}},
		{name: "last valid day", sel: domain.Selector{Day: 30, Task: 2}},
		{name: "day too low", sel: domain.Selector{Day: 1, Task: 1}, wantErr: domain.ErrInvalidDay},
		{name: "day too high", sel: domain.Selector{Day: 31, Task: 1}, wantErr: domain.ErrInvalidDay},
		{name: "zero day", sel: domain.Selector{Day: 0, Task: 1}, wantErr: domain.ErrInvalidDay},
		{name: "task zero", sel: domain.Selector{Day: 2, Task: 0}, wantErr: domain.ErrInvalidTask},
		{name: "task three", sel: domain.Selector{Day: 2, Task: 3}, wantErr: domain.ErrInvalidTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResult_String(t *testing.T) {
	if got := domain.NumberResult(15).String(); got != "15" {
		t.Errorf("expected 15, got %q", got)
	}
	if got := domain.TextResult("CMZ").String(); got != "CMZ" {
		t.Errorf("expected CMZ, got %q", got)
	}
}

func TestAnswerKey(t *testing.T) {
	key := domain.AnswerKey(domain.Selector{Day: 2, Task: 1}, "00ff00ff00ff00ff")
	if key != "2/1:00ff00ff00ff00ff" {
		t.Errorf("unexpected key: %s", key)
	}
}
