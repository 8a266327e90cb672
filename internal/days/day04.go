package days

import (
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day4 solves Camp Cleanup: count containing and overlapping section ranges.
type day4 struct{}

func (day4) Title() string { return "Camp Cleanup" }

func (day4) Description() string {
	return `Each line holds two inclusive section ranges, "a-b,c-d".

Range [a,b] contains [c,d] when a <= c and d <= b. The two ranges overlap
when either start falls inside the other range.

Task 1 counts the pairs where one range fully contains the other; task 2
counts the pairs that overlap at all.`
}

type sectionRange struct {
	from, to int
}

func (r sectionRange) contains(other sectionRange) bool {
	return r.from <= other.from && other.to <= r.to
}

func (r sectionRange) overlaps(other sectionRange) bool {
	return (r.from <= other.from && other.from <= r.to) ||
		(other.from <= r.from && r.from <= other.to)
}

func parseSectionRange(s string) (sectionRange, error) {
	from, to, found := strings.Cut(s, "-")
	if !found {
		return sectionRange{}, zerr.With(domain.ErrMalformedInput, "range", s)
	}

	start, err := parseInt(from)
	if err != nil {
		return sectionRange{}, err
	}
	end, err := parseInt(to)
	if err != nil {
		return sectionRange{}, err
	}

	return sectionRange{from: start, to: end}, nil
}

func parseRangePair(line string) (sectionRange, sectionRange, error) {
	first, second, found := strings.Cut(line, ",")
	if !found {
		return sectionRange{}, sectionRange{}, zerr.With(domain.ErrMalformedInput, "line", line)
	}

	a, err := parseSectionRange(first)
	if err != nil {
		return sectionRange{}, sectionRange{}, err
	}
	b, err := parseSectionRange(second)
	if err != nil {
		return sectionRange{}, sectionRange{}, err
	}

	return a, b, nil
}

func (day4) Part1(input string) (domain.Result, error) {
	count := 0
	for _, line := range lines(input) {
		a, b, err := parseRangePair(line)
		if err != nil {
			return domain.Result{}, err
		}
		if a.contains(b) || b.contains(a) {
			count++
		}
	}
	return domain.NumberResult(int64(count)), nil
}

func (day4) Part2(input string) (domain.Result, error) {
	count := 0
	for _, line := range lines(input) {
		a, b, err := parseRangePair(line)
		if err != nil {
			return domain.Result{}, err
		}
		if a.overlaps(b) {
			count++
		}
	}
	return domain.NumberResult(int64(count)), nil
}
