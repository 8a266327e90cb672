package days

import (
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day3 solves Rucksack Reorganization: find shared items via 52-bit sets.
type day3 struct{}

func (day3) Title() string { return "Rucksack Reorganization" }

func (day3) Description() string {
	return `There are only 52 possible item priorities (a-z map to 1-26, A-Z to 27-52),
so each rucksack compartment fits in a single 64-bit set where bit N stands
for priority N. Building the sets and intersecting them is linear in the
input, with no sorting or hashing needed.

Task 1 intersects the two compartment sets of each rucksack and sums the
priorities of the shared items.

Task 2 walks the rucksacks in groups of three, intersects the three whole-
rucksack sets, and sums the priority of each group's common badge item.`
}

// itemPriority maps an item letter to its priority, or 0 for anything else.
func itemPriority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	default:
		return 0
	}
}

// itemSet builds the priority bitset of a run of items.
func itemSet(items string) (uint64, error) {
	var set uint64
	for i := 0; i < len(items); i++ {
		p := itemPriority(items[i])
		if p == 0 {
			return 0, zerr.With(domain.ErrMalformedInput, "item", string(items[i]))
		}
		set |= 1 << p
	}
	return set, nil
}

// lowestPriority returns the priority of the lowest set bit, or 0 for an empty set.
func lowestPriority(set uint64) int {
	for p := 1; p <= 52; p++ {
		if set&(1<<p) != 0 {
			return p
		}
	}
	return 0
}

func (day3) Part1(input string) (domain.Result, error) {
	total := 0
	for _, line := range lines(input) {
		if len(line)%2 != 0 || len(line) == 0 {
			return domain.Result{}, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		half := len(line) / 2
		first, err := itemSet(line[:half])
		if err != nil {
			return domain.Result{}, err
		}
		second, err := itemSet(line[half:])
		if err != nil {
			return domain.Result{}, err
		}

		shared := lowestPriority(first & second)
		if shared == 0 {
			return domain.Result{}, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "no item in both compartments"), "line", line)
		}
		total += shared
	}

	return domain.NumberResult(int64(total)), nil
}

func (day3) Part2(input string) (domain.Result, error) {
	rucksacks := lines(input)
	if len(rucksacks)%3 != 0 {
		return domain.Result{}, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "rucksack count is not a multiple of three"), "count", len(rucksacks))
	}

	total := 0
	for i := 0; i < len(rucksacks); i += 3 {
		group := uint64(0xFFFFFFFFFFFFFFFF)
		for _, rucksack := range rucksacks[i : i+3] {
			set, err := itemSet(rucksack)
			if err != nil {
				return domain.Result{}, err
			}
			group &= set
		}

		badge := lowestPriority(group)
		if badge == 0 {
			return domain.Result{}, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "no badge shared by the group"), "group", i/3)
		}
		total += badge
	}

	return domain.NumberResult(int64(total)), nil
}
