package days

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day15 solves Beacon Exclusion Zone: interval arithmetic over sensor ranges.
type day15 struct {
	// row is the y coordinate task 1 inspects; bound caps the search square
	// task 2 scans. Both are small in sample inputs.
	row   int
	bound int
}

func newDay15() day15 {
	return day15{row: 2_000_000, bound: 4_000_000}
}

func (day15) Title() string { return "Beacon Exclusion Zone" }

func (day15) Description() string {
	return `Each sensor covers a diamond of cells within its Manhattan distance to the
nearest beacon. Intersecting a diamond with a row yields an interval, and
sorting and merging the intervals of all sensors describes a full row's
coverage cheaply.

Task 1 measures the covered cells of row 2000000, excluding cells holding a
beacon.

Task 2 scans the rows of the 0..4000000 square for the single cell no sensor
covers and reports it as "x,y" (the tuning frequency x*4000000+y overflows
the eye more than it helps).`
}

var sensorRE = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

type sensor struct {
	pos    position
	beacon position
	radius int
}

func parseSensors(input string) ([]sensor, error) {
	var sensors []sensor
	for _, line := range lines(input) {
		match := sensorRE.FindStringSubmatch(line)
		if match == nil {
			return nil, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		coords := make([]int, 4)
		for i := range coords {
			n, err := parseInt(match[i+1])
			if err != nil {
				return nil, err
			}
			coords[i] = n
		}

		s := sensor{
			pos:    position{x: coords[0], y: coords[1]},
			beacon: position{x: coords[2], y: coords[3]},
		}
		s.radius = abs(s.pos.x-s.beacon.x) + abs(s.pos.y-s.beacon.y)
		sensors = append(sensors, s)
	}

	if len(sensors) == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedInput, "no sensors in scan")
	}
	return sensors, nil
}

type span struct {
	from, to int
}

// rowCoverage intersects every sensor's diamond with the given row and
// returns the merged, disjoint covered spans in ascending order.
func rowCoverage(sensors []sensor, row int) []span {
	var spans []span
	for _, s := range sensors {
		reach := s.radius - abs(s.pos.y-row)
		if reach < 0 {
			continue
		}
		spans = append(spans, span{from: s.pos.x - reach, to: s.pos.x + reach})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].from < spans[j].from })

	merged := spans[:0]
	for _, sp := range spans {
		if len(merged) > 0 && sp.from <= merged[len(merged)-1].to+1 {
			if sp.to > merged[len(merged)-1].to {
				merged[len(merged)-1].to = sp.to
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func (d day15) Part1(input string) (domain.Result, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return domain.Result{}, err
	}

	covered := 0
	for _, sp := range rowCoverage(sensors, d.row) {
		covered += sp.to - sp.from + 1
	}

	// Cells holding a beacon are not positions a beacon cannot be at.
	beacons := map[int]bool{}
	for _, s := range sensors {
		if s.beacon.y == d.row {
			beacons[s.beacon.x] = true
		}
	}

	return domain.NumberResult(int64(covered - len(beacons))), nil
}

func (d day15) Part2(input string) (domain.Result, error) {
	sensors, err := parseSensors(input)
	if err != nil {
		return domain.Result{}, err
	}

	for y := 0; y <= d.bound; y++ {
		x := 0
		for _, sp := range rowCoverage(sensors, y) {
			if sp.from > x {
				break
			}
			if sp.to >= x {
				x = sp.to + 1
			}
		}
		if x <= d.bound {
			return domain.TextResult(fmt.Sprintf("%d,%d", x, y)), nil
		}
	}

	return domain.Result{}, zerr.Wrap(domain.ErrMalformedInput, "no uncovered cell within the search bound")
}
