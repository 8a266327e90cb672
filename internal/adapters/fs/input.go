// Package fs implements filesystem adapters: puzzle input reading and
// input-content hashing.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/illBeRoy/advent-2022/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputSource = (*InputReader)(nil)

// InputReader implements ports.InputSource over plain text files named
// day<N>.txt inside a configurable directory.
type InputReader struct{}

// NewInputReader creates a new InputReader.
func NewInputReader() *InputReader {
	return &InputReader{}
}

// InputFor reads the input file for the given day from dir.
func (r *InputReader) InputFor(dir string, day int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("day%d.txt", day))

	data, err := os.ReadFile(path) //nolint:gosec // Path follows the input naming convention
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read puzzle input"), "path", path)
	}

	return string(data), nil
}
