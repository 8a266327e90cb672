package days

import (
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day6 solves Tuning Trouble: find the first run of distinct characters.
type day6 struct{}

func (day6) Title() string { return "Tuning Trouble" }

func (day6) Description() string {
	return `A marker is the first position where the previous N characters are all
different. We slide a window of size N over the signal and check each window
for repeats; the answer is the index just past the first clean window.

Task 1 looks for the start-of-packet marker (N=4); task 2 looks for the
start-of-message marker (N=14).`
}

// firstMarker returns the number of characters consumed up to and including
// the first window of `size` distinct characters.
func firstMarker(signal string, size int) (int, error) {
	for i := 0; i+size <= len(signal); i++ {
		window := signal[i : i+size]

		distinct := true
		for j := 0; j < size && distinct; j++ {
			if strings.IndexByte(window[j+1:], window[j]) >= 0 {
				distinct = false
			}
		}

		if distinct {
			return i + size, nil
		}
	}

	return 0, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "no marker found in signal"), "window", size)
}

func (day6) Part1(input string) (domain.Result, error) {
	marker, err := firstMarker(strings.TrimSpace(input), 4)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.NumberResult(int64(marker)), nil
}

func (day6) Part2(input string) (domain.Result, error) {
	marker, err := firstMarker(strings.TrimSpace(input), 14)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.NumberResult(int64(marker)), nil
}
