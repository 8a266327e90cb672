package days

import (
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day9 solves Rope Bridge: simulate a rope whose knots follow the head.
type day9 struct{}

func (day9) Title() string { return "Rope Bridge" }

func (day9) Description() string {
	return `The rope is a slice of knot positions. Every head step, each knot follows
the one in front of it: a knot two squares away in a straight line steps
once toward it, and a knot detached diagonally steps once on both axes.
After every step the tail's position goes into a set, and the answer is the
set's size.

Task 1 uses a two-knot rope, task 2 a ten-knot one; the same follow rule
covers both.`
}

type position struct {
	x, y int
}

// follow returns where a knot moves given the knot ahead of it.
func follow(knot, lead position) position {
	dx := lead.x - knot.x
	dy := lead.y - knot.y

	if abs(dx) <= 1 && abs(dy) <= 1 {
		return knot
	}

	return position{x: knot.x + sign(dx), y: knot.y + sign(dy)}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// tailVisits simulates a rope with the given number of knots and counts the
// unique positions its tail rests on.
func tailVisits(input string, knotCount int) (int, error) {
	knots := make([]position, knotCount)
	visited := map[position]bool{knots[knotCount-1]: true}

	for _, line := range lines(input) {
		dir, byStr, found := strings.Cut(line, " ")
		if !found {
			return 0, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		by, err := parseInt(byStr)
		if err != nil {
			return 0, err
		}

		var step position
		switch dir {
		case "L":
			step = position{x: -1}
		case "R":
			step = position{x: 1}
		case "U":
			step = position{y: -1}
		case "D":
			step = position{y: 1}
		default:
			return 0, zerr.With(domain.ErrMalformedInput, "direction", dir)
		}

		for i := 0; i < by; i++ {
			knots[0].x += step.x
			knots[0].y += step.y
			for k := 1; k < knotCount; k++ {
				knots[k] = follow(knots[k], knots[k-1])
			}
			visited[knots[knotCount-1]] = true
		}
	}

	return len(visited), nil
}

func (day9) Part1(input string) (domain.Result, error) {
	visits, err := tailVisits(input, 2)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.NumberResult(int64(visits)), nil
}

func (day9) Part2(input string) (domain.Result, error) {
	visits, err := tailVisits(input, 10)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.NumberResult(int64(visits)), nil
}
