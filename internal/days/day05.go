package days

import (
	"regexp"
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day5 solves Supply Stacks: simulate a crane moving crates between stacks.
type day5 struct{}

func (day5) Title() string { return "Supply Stacks" }

func (day5) Description() string {
	return `The input starts with a drawing of crate stacks followed by "move N from
A to B" instructions. Parsing the drawing walks its lines in chunks of four
characters, pushing each "[X]" onto the bottom of its column's stack; the
instruction lines are matched with a regular expression.

Task 1 simulates a crane that lifts one crate at a time, so each move pops
and pushes crates individually, reversing their order.

Task 2 simulates a crane that lifts a whole slice at once, so the moved
crates keep their order. Both answers read the top crate of every stack.`
}

var moveInstructionRE = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

type craneMove struct {
	amount, from, to int
}

// parseCrateStacks reads the drawing at the top of the input into stacks,
// bottom crate first.
func parseCrateStacks(input string) ([][]byte, error) {
	all := lines(input)
	if len(all) == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedInput, "input is empty")
	}

	stackCount := (len(all[0]) + 1) / 4
	stacks := make([][]byte, stackCount)

	for _, line := range all {
		if strings.HasPrefix(strings.TrimLeft(line, " "), "1") {
			break
		}

		for i := 0; i*4+1 < len(line) && i < stackCount; i++ {
			if line[i*4] == '[' {
				stacks[i] = append([]byte{line[i*4+1]}, stacks[i]...)
			}
		}
	}

	return stacks, nil
}

// parseCraneMoves reads the instruction lines at the bottom of the input.
func parseCraneMoves(input string) ([]craneMove, error) {
	var moves []craneMove
	for _, line := range lines(input) {
		m := moveInstructionRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		amount, err := parseInt(m[1])
		if err != nil {
			return nil, err
		}
		from, err := parseInt(m[2])
		if err != nil {
			return nil, err
		}
		to, err := parseInt(m[3])
		if err != nil {
			return nil, err
		}

		moves = append(moves, craneMove{amount: amount, from: from, to: to})
	}
	return moves, nil
}

func validMove(move craneMove, stacks [][]byte) error {
	if move.from < 1 || move.from > len(stacks) || move.to < 1 || move.to > len(stacks) {
		return zerr.With(zerr.Wrap(domain.ErrMalformedInput, "move references a stack that does not exist"), "from", move.from)
	}
	if move.amount > len(stacks[move.from-1]) {
		return zerr.With(zerr.Wrap(domain.ErrMalformedInput, "move takes more crates than the stack holds"), "amount", move.amount)
	}
	return nil
}

func topCrates(stacks [][]byte) string {
	var top strings.Builder
	for _, stack := range stacks {
		if len(stack) == 0 {
			top.WriteByte(' ')
			continue
		}
		top.WriteByte(stack[len(stack)-1])
	}
	return top.String()
}

func (day5) Part1(input string) (domain.Result, error) {
	stacks, err := parseCrateStacks(input)
	if err != nil {
		return domain.Result{}, err
	}
	moves, err := parseCraneMoves(input)
	if err != nil {
		return domain.Result{}, err
	}

	for _, move := range moves {
		if err := validMove(move, stacks); err != nil {
			return domain.Result{}, err
		}

		for i := 0; i < move.amount; i++ {
			from := stacks[move.from-1]
			crate := from[len(from)-1]
			stacks[move.from-1] = from[:len(from)-1]
			stacks[move.to-1] = append(stacks[move.to-1], crate)
		}
	}

	return domain.TextResult(topCrates(stacks)), nil
}

func (day5) Part2(input string) (domain.Result, error) {
	stacks, err := parseCrateStacks(input)
	if err != nil {
		return domain.Result{}, err
	}
	moves, err := parseCraneMoves(input)
	if err != nil {
		return domain.Result{}, err
	}

	for _, move := range moves {
		if err := validMove(move, stacks); err != nil {
			return domain.Result{}, err
		}

		from := stacks[move.from-1]
		lifted := from[len(from)-move.amount:]
		stacks[move.from-1] = from[:len(from)-move.amount]
		stacks[move.to-1] = append(stacks[move.to-1], lifted...)
	}

	return domain.TextResult(topCrates(stacks)), nil
}
