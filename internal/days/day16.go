package days

import (
	"regexp"
	"slices"
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day16 solves Proboscidea Volcanium: open valves to maximize pressure relief.
type day16 struct{}

func (day16) Title() string { return "Proboscidea Volcanium" }

func (day16) Description() string {
	return `Only valves with a positive flow rate are worth opening, so the tunnel
graph is first compressed into pairwise travel times between those valves
(plus the AA start) with a BFS per valve. A depth-first search over the
compressed graph then tries every order of openings that fits the time
limit, remembering the best pressure released for every set of opened
valves.

Task 1 releases as much pressure as possible alone within 30 minutes.

Task 2 splits the work with an elephant: both get 26 minutes, and the best
total is the best pair of disjoint opened-valve sets, one walked by each.`
}

var valveRE = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

type valveScan struct {
	flow    map[string]int
	tunnels map[string][]string
}

func parseValves(input string) (*valveScan, error) {
	scan := &valveScan{
		flow:    map[string]int{},
		tunnels: map[string][]string{},
	}

	for _, line := range lines(input) {
		match := valveRE.FindStringSubmatch(line)
		if match == nil {
			return nil, zerr.With(domain.ErrMalformedInput, "line", line)
		}

		rate, err := parseInt(match[2])
		if err != nil {
			return nil, err
		}

		name := match[1]
		scan.flow[name] = rate
		scan.tunnels[name] = strings.Split(match[3], ", ")
	}

	if _, ok := scan.flow["AA"]; !ok {
		return nil, zerr.Wrap(domain.ErrMalformedInput, "scan has no valve AA")
	}
	return scan, nil
}

// valveGraph is the scan compressed to the valves worth opening: pairwise
// travel times from AA and from each working valve to every working valve.
type valveGraph struct {
	names []string
	flow  []int
	// dist[i][j] is the travel time from valve i to working valve j; index
	// len(names) is the AA start.
	dist [][]int
}

func (s *valveScan) compress() (*valveGraph, error) {
	g := &valveGraph{}
	for name, rate := range s.flow {
		if rate > 0 {
			g.names = append(g.names, name)
		}
	}
	// Deterministic ordering keeps runs reproducible regardless of map order.
	slices.Sort(g.names)

	for _, name := range g.names {
		g.flow = append(g.flow, s.flow[name])
	}

	index := map[string]int{}
	for i, name := range g.names {
		index[name] = i
	}

	sources := append(append([]string{}, g.names...), "AA")
	for _, src := range sources {
		row := make([]int, len(g.names))
		for i := range row {
			row[i] = -1
		}

		steps := map[string]int{src: 0}
		queue := []string{src}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if i, ok := index[cur]; ok {
				row[i] = steps[cur]
			}
			for _, next := range s.tunnels[cur] {
				if _, seen := steps[next]; seen {
					continue
				}
				steps[next] = steps[cur] + 1
				queue = append(queue, next)
			}
		}

		g.dist = append(g.dist, row)
	}

	for _, d := range g.dist[len(g.names)] {
		if d == -1 {
			return nil, zerr.Wrap(domain.ErrMalformedInput, "a working valve is unreachable from AA")
		}
	}
	return g, nil
}

// bestPerSet explores every feasible opening order within the time limit and
// returns the best pressure released for each bitmask of opened valves.
func (g *valveGraph) bestPerSet(minutes int) map[uint64]int {
	best := map[uint64]int{}

	var visit func(at, timeLeft, released int, opened uint64)
	visit = func(at, timeLeft, released int, opened uint64) {
		if released > best[opened] {
			best[opened] = released
		}
		for next := range g.names {
			if opened&(1<<next) != 0 {
				continue
			}
			remaining := timeLeft - g.dist[at][next] - 1
			if remaining <= 0 {
				continue
			}
			visit(next, remaining, released+remaining*g.flow[next], opened|uint64(1)<<next)
		}
	}
	visit(len(g.names), minutes, 0, 0)

	return best
}

func (day16) Part1(input string) (domain.Result, error) {
	scan, err := parseValves(input)
	if err != nil {
		return domain.Result{}, err
	}
	graph, err := scan.compress()
	if err != nil {
		return domain.Result{}, err
	}

	best := 0
	for _, released := range graph.bestPerSet(30) {
		if released > best {
			best = released
		}
	}

	return domain.NumberResult(int64(best)), nil
}

func (day16) Part2(input string) (domain.Result, error) {
	scan, err := parseValves(input)
	if err != nil {
		return domain.Result{}, err
	}
	graph, err := scan.compress()
	if err != nil {
		return domain.Result{}, err
	}

	perSet := graph.bestPerSet(26)

	best := 0
	for mine, myReleased := range perSet {
		for elephants, theirReleased := range perSet {
			if mine&elephants != 0 {
				continue
			}
			if myReleased+theirReleased > best {
				best = myReleased + theirReleased
			}
		}
	}

	return domain.NumberResult(int64(best)), nil
}
