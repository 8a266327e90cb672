package days

import (
	"regexp"
	"sort"
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day11 solves Monkey in the Middle: simulate item-throwing monkeys.
type day11 struct{}

func (day11) Title() string { return "Monkey in the Middle" }

func (day11) Description() string {
	return `Each monkey block parses into starting items, a worry operation (old +/- /*
old or a constant), a divisibility test and the two target monkeys. Every
round each monkey inspects its items in order, applies the operation, and
throws the item by the test's verdict.

Task 1 runs 20 rounds with the worry level divided by 3 after every
inspection.

Task 2 runs 10000 rounds with no relief. The worry levels would overflow,
but only divisibility matters, so every level is reduced modulo the product
of all the monkeys' divisors, which preserves every test's verdict.

The answer to both is the product of the two highest inspection counts.`
}

type monkeyOperand struct {
	old      bool
	constant int64
}

func (o monkeyOperand) resolve(old int64) int64 {
	if o.old {
		return old
	}
	return o.constant
}

type monkey struct {
	items       []int64
	operator    byte
	left, right monkeyOperand
	divisibleBy int64
	ifTrue      int
	ifFalse     int
	inspected   int64
}

func (m *monkey) applyOperation(worry int64) int64 {
	left := m.left.resolve(worry)
	right := m.right.resolve(worry)
	switch m.operator {
	case '+':
		return left + right
	case '-':
		return left - right
	default:
		return left * right
	}
}

var monkeyOperationRE = regexp.MustCompile(`new = (old|\d+) ([+*-]) (old|\d+)$`)

func parseMonkeyOperand(s string) (monkeyOperand, error) {
	if s == "old" {
		return monkeyOperand{old: true}, nil
	}
	n, err := parseInt(s)
	if err != nil {
		return monkeyOperand{}, err
	}
	return monkeyOperand{constant: int64(n)}, nil
}

// parseMonkeys reads the blank-line-separated monkey blocks.
func parseMonkeys(input string) ([]*monkey, error) {
	var monkeys []*monkey

	blocks := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}

		blockLines := lines(block)
		if len(blockLines) < 6 {
			return nil, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "monkey block is too short"), "block", block)
		}

		m := &monkey{}

		itemsStr, found := strings.CutPrefix(strings.TrimSpace(blockLines[1]), "Starting items: ")
		if !found {
			return nil, zerr.With(domain.ErrMalformedInput, "line", blockLines[1])
		}
		for _, item := range strings.Split(itemsStr, ", ") {
			n, err := parseInt(item)
			if err != nil {
				return nil, err
			}
			m.items = append(m.items, int64(n))
		}

		op := monkeyOperationRE.FindStringSubmatch(blockLines[2])
		if op == nil {
			return nil, zerr.With(domain.ErrMalformedInput, "line", blockLines[2])
		}
		var err error
		if m.left, err = parseMonkeyOperand(op[1]); err != nil {
			return nil, err
		}
		m.operator = op[2][0]
		if m.right, err = parseMonkeyOperand(op[3]); err != nil {
			return nil, err
		}

		divStr, found := strings.CutPrefix(strings.TrimSpace(blockLines[3]), "Test: divisible by ")
		if !found {
			return nil, zerr.With(domain.ErrMalformedInput, "line", blockLines[3])
		}
		div, err := parseInt(divStr)
		if err != nil {
			return nil, err
		}
		m.divisibleBy = int64(div)

		trueStr, found := strings.CutPrefix(strings.TrimSpace(blockLines[4]), "If true: throw to monkey ")
		if !found {
			return nil, zerr.With(domain.ErrMalformedInput, "line", blockLines[4])
		}
		if m.ifTrue, err = parseInt(trueStr); err != nil {
			return nil, err
		}

		falseStr, found := strings.CutPrefix(strings.TrimSpace(blockLines[5]), "If false: throw to monkey ")
		if !found {
			return nil, zerr.With(domain.ErrMalformedInput, "line", blockLines[5])
		}
		if m.ifFalse, err = parseInt(falseStr); err != nil {
			return nil, err
		}

		monkeys = append(monkeys, m)
	}

	if len(monkeys) == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedInput, "no monkeys in input")
	}
	return monkeys, nil
}

// monkeyBusiness simulates the given number of rounds and returns the product
// of the two highest inspection counts. The manage function reduces the worry
// level after each inspection.
func monkeyBusiness(monkeys []*monkey, rounds int, manage func(int64) int64) (int64, error) {
	for round := 0; round < rounds; round++ {
		for _, m := range monkeys {
			for _, item := range m.items {
				worry := manage(m.applyOperation(item))
				target := m.ifFalse
				if worry%m.divisibleBy == 0 {
					target = m.ifTrue
				}
				if target < 0 || target >= len(monkeys) {
					return 0, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "throw targets a monkey that does not exist"), "target", target)
				}
				monkeys[target].items = append(monkeys[target].items, worry)
				m.inspected++
			}
			m.items = m.items[:0]
		}
	}

	counts := make([]int64, 0, len(monkeys))
	for _, m := range monkeys {
		counts = append(counts, m.inspected)
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })

	if len(counts) < 2 {
		return 0, zerr.Wrap(domain.ErrMalformedInput, "need at least two monkeys")
	}
	return counts[0] * counts[1], nil
}

func (day11) Part1(input string) (domain.Result, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return domain.Result{}, err
	}

	business, err := monkeyBusiness(monkeys, 20, func(worry int64) int64 {
		return worry / 3
	})
	if err != nil {
		return domain.Result{}, err
	}

	return domain.NumberResult(business), nil
}

func (day11) Part2(input string) (domain.Result, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return domain.Result{}, err
	}

	modulus := int64(1)
	for _, m := range monkeys {
		modulus *= m.divisibleBy
	}

	business, err := monkeyBusiness(monkeys, 10_000, func(worry int64) int64 {
		return worry % modulus
	})
	if err != nil {
		return domain.Result{}, err
	}

	return domain.NumberResult(business), nil
}
