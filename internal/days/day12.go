package days

import (
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day12 solves Hill Climbing Algorithm: BFS over an elevation grid.
type day12 struct{}

func (day12) Title() string { return "Hill Climbing Algorithm" }

func (day12) Description() string {
	return `The grid is a graph whose edges allow climbing at most one elevation step
up, with S at elevation a and E at elevation z. A plain breadth-first search
from S returns the shortest path to E for task 1.

Task 2 wants the shortest trail from any a-elevation square, so the search
runs backwards from E with the edge rule reversed (descend at most one
step), stopping at the first a it reaches.`
}

// elevation maps a grid cell to its height, folding S and E to their values.
func elevation(c byte) byte {
	switch c {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	default:
		return c
	}
}

// climbGrid parses the input and locates the cell holding marker.
func climbGrid(input string, marker byte) ([][]byte, position, error) {
	var grid [][]byte
	start := position{x: -1, y: -1}

	for y, line := range lines(input) {
		row := []byte(line)
		for x, c := range row {
			valid := (c >= 'a' && c <= 'z') || c == 'S' || c == 'E'
			if !valid {
				return nil, position{}, zerr.With(domain.ErrMalformedInput, "cell", string(c))
			}
			if c == marker {
				start = position{x: x, y: y}
			}
		}
		grid = append(grid, row)
	}

	if start.x == -1 {
		return nil, position{}, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "marker not found in grid"), "marker", string(marker))
	}
	return grid, start, nil
}

// shortestPath runs BFS from start until goal returns true for a cell,
// following edges admitted by traversable.
func shortestPath(grid [][]byte, start position, goal func(byte) bool, traversable func(from, to byte) bool) (int, error) {
	dist := map[position]int{start: 0}
	queue := []position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		val := grid[cur.y][cur.x]
		if goal(val) {
			return dist[cur], nil
		}

		neighbors := []position{
			{x: cur.x - 1, y: cur.y},
			{x: cur.x + 1, y: cur.y},
			{x: cur.x, y: cur.y - 1},
			{x: cur.x, y: cur.y + 1},
		}
		for _, n := range neighbors {
			if n.y < 0 || n.y >= len(grid) || n.x < 0 || n.x >= len(grid[n.y]) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			if !traversable(val, grid[n.y][n.x]) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}

	return 0, zerr.Wrap(domain.ErrMalformedInput, "no path exists in grid")
}

func (day12) Part1(input string) (domain.Result, error) {
	grid, start, err := climbGrid(input, 'S')
	if err != nil {
		return domain.Result{}, err
	}

	steps, err := shortestPath(grid, start,
		func(c byte) bool { return c == 'E' },
		func(from, to byte) bool { return elevation(to) <= elevation(from)+1 },
	)
	if err != nil {
		return domain.Result{}, err
	}

	return domain.NumberResult(int64(steps)), nil
}

func (day12) Part2(input string) (domain.Result, error) {
	grid, start, err := climbGrid(input, 'E')
	if err != nil {
		return domain.Result{}, err
	}

	steps, err := shortestPath(grid, start,
		func(c byte) bool { return elevation(c) == 'a' },
		func(from, to byte) bool { return elevation(from) <= elevation(to)+1 },
	)
	if err != nil {
		return domain.Result{}, err
	}

	return domain.NumberResult(int64(steps)), nil
}
