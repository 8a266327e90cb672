package days

import (
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day10 solves Cathode-Ray Tube: a cycle-accurate one-register CPU and a CRT.
type day10 struct{}

func (day10) Title() string { return "Cathode-Ray Tube" }

func (day10) Description() string {
	return `The program is a list of noop (1 cycle) and addx (2 cycles) instructions
driving a single X register. We step the CPU cycle by cycle, observing the
register value during each cycle.

Task 1 samples the signal strength (cycle number times X) during cycles 20,
60, 100, 140, 180 and 220 and sums the samples.

Task 2 drives a 40x6 CRT from the same clock: each cycle lights one pixel,
lit when the three-pixel sprite centered on X covers the beam's column. The
answer is the rendered screen.`
}

type cpuInstruction struct {
	cycles int
	addX   int
}

func parseProgram(input string) ([]cpuInstruction, error) {
	var program []cpuInstruction
	for _, line := range lines(input) {
		line = strings.TrimSpace(line)
		switch {
		case line == "noop":
			program = append(program, cpuInstruction{cycles: 1})
		case strings.HasPrefix(line, "addx "):
			by, err := parseInt(strings.TrimPrefix(line, "addx "))
			if err != nil {
				return nil, err
			}
			program = append(program, cpuInstruction{cycles: 2, addX: by})
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "unknown instruction"), "line", line)
		}
	}
	return program, nil
}

// runProgram steps through the program, calling observe with the register
// value during every cycle.
func runProgram(program []cpuInstruction, observe func(cycle, reg int)) {
	reg := 1
	cycle := 0
	for _, inst := range program {
		for i := 0; i < inst.cycles; i++ {
			cycle++
			observe(cycle, reg)
		}
		reg += inst.addX
	}
}

func (day10) Part1(input string) (domain.Result, error) {
	program, err := parseProgram(input)
	if err != nil {
		return domain.Result{}, err
	}

	sum := 0
	runProgram(program, func(cycle, reg int) {
		if cycle <= 220 && (cycle-20)%40 == 0 {
			sum += cycle * reg
		}
	})

	return domain.NumberResult(int64(sum)), nil
}

func (day10) Part2(input string) (domain.Result, error) {
	program, err := parseProgram(input)
	if err != nil {
		return domain.Result{}, err
	}

	const crtWidth, crtHeight = 40, 6
	screen := make([][]byte, crtHeight)
	for row := range screen {
		screen[row] = []byte(strings.Repeat(".", crtWidth))
	}

	runProgram(program, func(cycle, reg int) {
		beam := cycle - 1
		if beam >= crtWidth*crtHeight {
			return
		}
		row, col := beam/crtWidth, beam%crtWidth
		if col >= reg-1 && col <= reg+1 {
			screen[row][col] = '#'
		}
	})

	rendered := make([]string, crtHeight)
	for row := range screen {
		rendered[row] = string(screen[row])
	}

	return domain.TextResult(strings.Join(rendered, "\n")), nil
}
