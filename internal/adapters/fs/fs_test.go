package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/illBeRoy/advent-2022/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputReader_InputFor(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "day2.txt"), []byte("A Y\nB X\nC Z\n"), 0o600))

	reader := fs.NewInputReader()
	input, err := reader.InputFor(tmpDir, 2)
	require.NoError(t, err)
	assert.Equal(t, "A Y\nB X\nC Z\n", input)
}

func TestInputReader_MissingFile(t *testing.T) {
	reader := fs.NewInputReader()
	_, err := reader.InputFor(t.TempDir(), 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read puzzle input")
}

func TestHasher_HashInput(t *testing.T) {
	hasher := fs.NewHasher()

	a := hasher.HashInput("A Y\nB X\nC Z\n")
	b := hasher.HashInput("A Y\nB X\nC Z\n")
	c := hasher.HashInput("A Y\nB X\nC Z\nA Z\n")

	assert.Len(t, a, 16)
	assert.Equal(t, a, b, "same input must yield the same digest")
	assert.NotEqual(t, a, c, "different input must yield a different digest")
}
