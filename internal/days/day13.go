package days

import (
	"encoding/json"
	"sort"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day13 solves Distress Signal: order nested list packets.
type day13 struct{}

func (day13) Title() string { return "Distress Signal" }

func (day13) Description() string {
	return `Every packet line is a valid JSON array, so parsing is just handing each
line to the JSON decoder. A recursive comparator implements the ordering
rule: numbers compare numerically, lists compare element by element with the
shorter list winning ties, and a number against a list is promoted to a
one-element list.

Task 1 compares the input's packet pairs and sums the 1-based indices of the
pairs already in the right order.

Task 2 sorts all packets together with the divider packets [[2]] and [[6]]
using the same comparator and multiplies the dividers' positions.`
}

// parsePacket decodes one packet line as JSON.
func parsePacket(line string) (any, error) {
	var packet any
	if err := json.Unmarshal([]byte(line), &packet); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "packet is not valid JSON"), "line", line)
	}
	return packet, nil
}

// comparePackets returns a negative value when left sorts before right,
// positive when after, and zero when equal.
func comparePackets(left, right any) int {
	leftNum, leftIsNum := left.(float64)
	rightNum, rightIsNum := right.(float64)

	switch {
	case leftIsNum && rightIsNum:
		switch {
		case leftNum < rightNum:
			return -1
		case leftNum > rightNum:
			return 1
		default:
			return 0
		}
	case leftIsNum:
		return comparePackets([]any{left}, right)
	case rightIsNum:
		return comparePackets(left, []any{right})
	}

	leftList, _ := left.([]any)
	rightList, _ := right.([]any)

	for i := 0; i < len(leftList) && i < len(rightList); i++ {
		if order := comparePackets(leftList[i], rightList[i]); order != 0 {
			return order
		}
	}
	return len(leftList) - len(rightList)
}

func (day13) Part1(input string) (domain.Result, error) {
	all := lines(input)

	sum := 0
	pair := 0
	for i := 0; i+1 < len(all); i += 3 {
		pair++

		left, err := parsePacket(all[i])
		if err != nil {
			return domain.Result{}, err
		}
		right, err := parsePacket(all[i+1])
		if err != nil {
			return domain.Result{}, err
		}

		if comparePackets(left, right) < 0 {
			sum += pair
		}
	}

	return domain.NumberResult(int64(sum)), nil
}

func (day13) Part2(input string) (domain.Result, error) {
	packets := []any{
		[]any{[]any{float64(2)}},
		[]any{[]any{float64(6)}},
	}
	firstDivider, secondDivider := packets[0], packets[1]

	for _, line := range lines(input) {
		if line == "" {
			continue
		}
		packet, err := parsePacket(line)
		if err != nil {
			return domain.Result{}, err
		}
		packets = append(packets, packet)
	}

	sort.SliceStable(packets, func(i, j int) bool {
		return comparePackets(packets[i], packets[j]) < 0
	})

	product := 1
	for i, packet := range packets {
		if comparePackets(packet, firstDivider) == 0 || comparePackets(packet, secondDivider) == 0 {
			product *= i + 1
		}
	}

	return domain.NumberResult(int64(product)), nil
}
