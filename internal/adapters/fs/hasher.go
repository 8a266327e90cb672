package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/illBeRoy/advent-2022/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of puzzle inputs. The digest is part of the
// answer-cache key, so an edited input file forces recomputation.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashInput computes a stable hex digest of the given input text.
func (h *Hasher) HashInput(input string) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(input)
	return fmt.Sprintf("%016x", hasher.Sum64())
}
