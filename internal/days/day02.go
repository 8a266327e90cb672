package days

import (
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day2 solves Rock Paper Scissors: score a strategy guide of rounds.
type day2 struct{}

func (day2) Title() string { return "Rock Paper Scissors" }

func (day2) Description() string {
	return `Each line of the guide is one round. The first column is the opponent's
hand (A/B/C for rock/paper/scissors); the second is interpreted per task.

Task 1 reads the second column as our own hand (X/Y/Z for rock/paper/scissors)
and sums the round scores: the value of the hand we played (1/2/3) plus
0 for a loss, 3 for a draw and 6 for a win.

Task 2 reads the second column as the required outcome (X lose, Y draw,
Z win), derives the hand that produces it against the opponent's, and scores
the same way.`
}

type hand int

const (
	rock     hand = 1
	paper    hand = 2
	scissors hand = 3
)

// beatenBy returns the hand that wins against h.
func (h hand) beatenBy() hand {
	switch h {
	case rock:
		return paper
	case paper:
		return scissors
	default:
		return rock
	}
}

// beats returns the hand that loses against h.
func (h hand) beats() hand {
	switch h {
	case rock:
		return scissors
	case paper:
		return rock
	default:
		return paper
	}
}

func (h hand) scoreAgainst(theirs hand) int {
	score := int(h)
	switch {
	case h == theirs:
		score += 3
	case h.beats() == theirs:
		score += 6
	}
	return score
}

func parseTheirHand(line string) (hand, error) {
	switch line[0] {
	case 'A':
		return rock, nil
	case 'B':
		return paper, nil
	case 'C':
		return scissors, nil
	default:
		return 0, zerr.With(domain.ErrMalformedInput, "line", line)
	}
}

func (day2) Part1(input string) (domain.Result, error) {
	total := 0
	for _, line := range lines(input) {
		if len(line) < 3 {
			return domain.Result{}, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		theirs, err := parseTheirHand(line)
		if err != nil {
			return domain.Result{}, err
		}

		var yours hand
		switch line[2] {
		case 'X':
			yours = rock
		case 'Y':
			yours = paper
		case 'Z':
			yours = scissors
		default:
			return domain.Result{}, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		total += yours.scoreAgainst(theirs)
	}

	return domain.NumberResult(int64(total)), nil
}

func (day2) Part2(input string) (domain.Result, error) {
	total := 0
	for _, line := range lines(input) {
		if len(line) < 3 {
			return domain.Result{}, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		theirs, err := parseTheirHand(line)
		if err != nil {
			return domain.Result{}, err
		}

		var yours hand
		switch line[2] {
		case 'X':
			yours = theirs.beats()
		case 'Y':
			yours = theirs
		case 'Z':
			yours = theirs.beatenBy()
		default:
			return domain.Result{}, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		total += yours.scoreAgainst(theirs)
	}

	return domain.NumberResult(int64(total)), nil
}
