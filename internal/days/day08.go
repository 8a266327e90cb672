package days

import (
	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day8 solves Treetop Tree House: tree visibility and scenic scores on a grid.
type day8 struct{}

func (day8) Title() string { return "Treetop Tree House" }

func (day8) Description() string {
	return `The grid of tree heights is scanned twice: once from the top-left and once
from the bottom-right, carrying for every tree the tallest tree between it
and each edge. A tree is visible from outside when it is taller than the
tallest tree in at least one direction, so task 1 is two linear passes plus
a count.

Task 2 scores each tree by multiplying its viewing distance in all four
directions, walking outward until a tree of the same height or taller
blocks the view, and takes the maximum score.`
}

// parseForest reads the digit grid into rows of heights.
func parseForest(input string) ([][]int8, error) {
	var grid [][]int8
	for _, line := range lines(input) {
		row := make([]int8, 0, len(line))
		for _, c := range []byte(line) {
			if c < '0' || c > '9' {
				return nil, zerr.With(domain.ErrMalformedInput, "height", string(c))
			}
			row = append(row, int8(c-'0'))
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "grid rows have uneven lengths"), "line", line)
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, zerr.Wrap(domain.ErrMalformedInput, "input is empty")
	}
	return grid, nil
}

func (day8) Part1(input string) (domain.Result, error) {
	grid, err := parseForest(input)
	if err != nil {
		return domain.Result{}, err
	}

	height := len(grid)
	width := len(grid[0])

	// highest[dir][y][x] is the tallest tree strictly between (x,y) and the
	// edge in that direction; -1 at the borders.
	const left, top, right, bottom = 0, 1, 2, 3
	highest := [4][][]int8{}
	for dir := range highest {
		highest[dir] = make([][]int8, height)
		for y := range highest[dir] {
			highest[dir][y] = make([]int8, width)
			for x := range highest[dir][y] {
				highest[dir][y][x] = -1
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > 0 {
				highest[left][y][x] = max(highest[left][y][x-1], grid[y][x-1])
			}
			if y > 0 {
				highest[top][y][x] = max(highest[top][y-1][x], grid[y-1][x])
			}
		}
	}
	for y := height - 1; y >= 0; y-- {
		for x := width - 1; x >= 0; x-- {
			if x < width-1 {
				highest[right][y][x] = max(highest[right][y][x+1], grid[y][x+1])
			}
			if y < height-1 {
				highest[bottom][y][x] = max(highest[bottom][y+1][x], grid[y+1][x])
			}
		}
	}

	visible := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h := grid[y][x]
			if h > highest[left][y][x] || h > highest[top][y][x] ||
				h > highest[right][y][x] || h > highest[bottom][y][x] {
				visible++
			}
		}
	}

	return domain.NumberResult(int64(visible)), nil
}

func (day8) Part2(input string) (domain.Result, error) {
	grid, err := parseForest(input)
	if err != nil {
		return domain.Result{}, err
	}

	height := len(grid)
	width := len(grid[0])

	best := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			score := viewDistance(grid, x, y, -1, 0) *
				viewDistance(grid, x, y, 1, 0) *
				viewDistance(grid, x, y, 0, -1) *
				viewDistance(grid, x, y, 0, 1)
			if score > best {
				best = score
			}
		}
	}

	return domain.NumberResult(int64(best)), nil
}

// viewDistance walks from (x,y) in direction (dx,dy) until a tree at least as
// tall blocks the view or the edge is reached.
func viewDistance(grid [][]int8, x, y, dx, dy int) int {
	h := grid[y][x]
	distance := 0
	for {
		x += dx
		y += dy
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[0]) {
			return distance
		}
		distance++
		if grid[y][x] >= h {
			return distance
		}
	}
}
