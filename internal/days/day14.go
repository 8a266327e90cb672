package days

import (
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day14 solves Regolith Reservoir: falling sand over scanned rock paths.
type day14 struct{}

func (day14) Title() string { return "Regolith Reservoir" }

func (day14) Description() string {
	return `Each input line is a rock path of coordinates joined by " -> "; drawing
them fills a grid of cells. Grains of sand drop from (500,0), falling
straight down, then diagonally left, then diagonally right, until nothing
below is free.

Task 1 drops grains until one falls past the lowest rock into the abyss and
counts the grains that came to rest before it.

Task 2 adds an infinite floor two rows below the lowest rock (checked by
depth rather than drawn) and counts grains until one rests at the source
itself.`
}

type cavePixel byte

const (
	caveEmpty cavePixel = iota
	caveRock
	caveSand
)

const caveSize = 1000

// parseCave draws the scanned rock paths into a grid and returns it along
// with the depth of the lowest rock.
func parseCave(input string) ([][]cavePixel, int, error) {
	grid := make([][]cavePixel, caveSize)
	for y := range grid {
		grid[y] = make([]cavePixel, caveSize)
	}

	lowest := -1
	for _, line := range lines(input) {
		var path []position
		for _, coordStr := range strings.Split(line, " -> ") {
			xStr, yStr, found := strings.Cut(coordStr, ",")
			if !found {
				return nil, 0, zerr.With(domain.ErrMalformedInput, "coordinate", coordStr)
			}
			x, err := parseInt(xStr)
			if err != nil {
				return nil, 0, err
			}
			y, err := parseInt(yStr)
			if err != nil {
				return nil, 0, err
			}
			if x < 0 || x >= caveSize || y < 0 || y >= caveSize {
				return nil, 0, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "coordinate out of bounds"), "coordinate", coordStr)
			}
			path = append(path, position{x: x, y: y})
		}

		for i := 1; i < len(path); i++ {
			cur, end := path[i-1], path[i]
			for {
				grid[cur.y][cur.x] = caveRock
				if cur.y > lowest {
					lowest = cur.y
				}
				if cur == end {
					break
				}
				cur.x += sign(end.x - cur.x)
				cur.y += sign(end.y - cur.y)
			}
		}
	}

	if lowest == -1 {
		return nil, 0, zerr.Wrap(domain.ErrMalformedInput, "no rock in scan")
	}
	return grid, lowest, nil
}

// dropGrain simulates one grain from (500,0) and returns where it comes to
// rest. Falling is stopped at maxDepth, either the abyss line or the floor.
func dropGrain(grid [][]cavePixel, maxDepth int) position {
	grain := position{x: 500, y: 0}
	for grain.y < maxDepth {
		switch {
		case grid[grain.y+1][grain.x] == caveEmpty:
			grain.y++
		case grid[grain.y+1][grain.x-1] == caveEmpty:
			grain.x--
			grain.y++
		case grid[grain.y+1][grain.x+1] == caveEmpty:
			grain.x++
			grain.y++
		default:
			return grain
		}
	}
	return grain
}

func (day14) Part1(input string) (domain.Result, error) {
	grid, lowest, err := parseCave(input)
	if err != nil {
		return domain.Result{}, err
	}

	rested := 0
	for {
		grain := dropGrain(grid, lowest)
		if grain.y >= lowest {
			break
		}
		grid[grain.y][grain.x] = caveSand
		rested++
	}

	return domain.NumberResult(int64(rested)), nil
}

func (day14) Part2(input string) (domain.Result, error) {
	grid, lowest, err := parseCave(input)
	if err != nil {
		return domain.Result{}, err
	}

	// Grains stop one row above the floor at lowest+2.
	floor := lowest + 2

	rested := 0
	source := position{x: 500, y: 0}
	for {
		grain := dropGrain(grid, floor-1)
		grid[grain.y][grain.x] = caveSand
		rested++
		if grain == source {
			break
		}
	}

	return domain.NumberResult(int64(rested)), nil
}
