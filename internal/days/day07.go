package days

import (
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// day7 solves No Space Left On Device: rebuild directory sizes from a shell log.
type day7 struct{}

func (day7) Title() string { return "No Space Left On Device" }

func (day7) Description() string {
	return `The input is a terminal session of cd and ls commands. We replay it with a
path stack: cd pushes and pops directories, and every file listed by ls adds
its size to the current directory and all of its ancestors. The result is a
flat map from directory path to total size, with no tree structure needed.

Task 1 sums the sizes of all directories of at most 100000 bytes.

Task 2 computes how much space must be freed so that 30000000 of the
70000000 total is available, then picks the smallest directory whose
deletion frees at least that much.`
}

const (
	day7TotalDisk    = 70_000_000
	day7RequiredFree = 30_000_000
	day7SmallDirMax  = 100_000
)

// parseDirSizes replays the terminal session into a path -> total size map.
func parseDirSizes(input string) (map[string]int, error) {
	sizes := map[string]int{"/": 0}
	stack := []string{"/"}

	for _, line := range lines(input) {
		switch {
		case line == "$ cd /":
			stack = stack[:1]

		case line == "$ cd ..":
			if len(stack) == 1 {
				return nil, zerr.Wrap(domain.ErrMalformedInput, "cd .. above the root directory")
			}
			stack = stack[:len(stack)-1]

		case strings.HasPrefix(line, "$ cd "):
			name := strings.TrimPrefix(line, "$ cd ")
			stack = append(stack, stack[len(stack)-1]+name+"/")

		case line == "$ ls" || strings.HasPrefix(line, "dir "):
			// Directory entries contribute nothing until their files are listed.

		default:
			sizeStr, _, found := strings.Cut(line, " ")
			if !found {
				return nil, zerr.With(domain.ErrMalformedInput, "line", line)
			}
			size, err := parseInt(sizeStr)
			if err != nil {
				return nil, zerr.With(domain.ErrMalformedInput, "line", line)
			}
			for _, dir := range stack {
				sizes[dir] += size
			}
		}
	}

	return sizes, nil
}

func (day7) Part1(input string) (domain.Result, error) {
	sizes, err := parseDirSizes(input)
	if err != nil {
		return domain.Result{}, err
	}

	total := 0
	for _, size := range sizes {
		if size <= day7SmallDirMax {
			total += size
		}
	}

	return domain.NumberResult(int64(total)), nil
}

func (day7) Part2(input string) (domain.Result, error) {
	sizes, err := parseDirSizes(input)
	if err != nil {
		return domain.Result{}, err
	}

	used := sizes["/"]
	mustFree := used - (day7TotalDisk - day7RequiredFree)
	if mustFree <= 0 {
		return domain.Result{}, zerr.Wrap(domain.ErrMalformedInput, "enough space is already free")
	}

	best := -1
	for _, size := range sizes {
		if size >= mustFree && (best == -1 || size < best) {
			best = size
		}
	}
	if best == -1 {
		return domain.Result{}, zerr.Wrap(domain.ErrMalformedInput, "no directory is large enough to free the required space")
	}

	return domain.NumberResult(int64(best)), nil
}
