package domain

// Solver is a single day's puzzle logic. Implementations are stateless pure
// functions of the input text; all file IO happens outside the solver.
type Solver interface {
	// Title returns the day's puzzle title.
	Title() string

	// Description returns a short prose summary of the solving approach,
	// printed when the describe flag is set.
	Description() string

	// Part1 solves the day's first task.
	Part1(input string) (Result, error)

	// Part2 solves the day's second task.
	Part2(input string) (Result, error)
}
