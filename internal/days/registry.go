// Package days contains the per-day puzzle solvers and their registry.
//
// Each day is an isolated pure function of its input text; no state is shared
// between days or between runs.
package days

import (
	"slices"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry maps day numbers to their solvers.
type Registry struct {
	solvers map[int]domain.Solver
}

// New creates a Registry with every implemented day registered.
func New() *Registry {
	return &Registry{
		solvers: map[int]domain.Solver{
			2:  day2{},
			3:  day3{},
			4:  day4{},
			5:  day5{},
			6:  day6{},
			7:  day7{},
			8:  day8{},
			9:  day9{},
			10: day10{},
			11: day11{},
			12: day12{},
			13: day13{},
			14: day14{},
			15: newDay15(),
			16: day16{},
		},
	}
}

// Solver returns the solver registered for the given day.
func (r *Registry) Solver(day int) (domain.Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownDay, "day", day)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
