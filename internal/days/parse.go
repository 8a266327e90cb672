package days

import (
	"strconv"
	"strings"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
)

// lines splits the input into lines, normalizing CRLF and dropping trailing
// blank lines so that a file's final newline does not produce an empty entry.
func lines(input string) []string {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	split := strings.Split(normalized, "\n")
	for len(split) > 0 && split[len(split)-1] == "" {
		split = split[:len(split)-1]
	}
	return split
}

// parseInt parses a decimal integer, wrapping failures as malformed input.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, zerr.With(domain.ErrMalformedInput, "value", s)
	}
	return n, nil
}
