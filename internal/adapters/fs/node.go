package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/illBeRoy/advent-2022/internal/core/ports"
)

const (
	// InputNodeID is the unique identifier for the input reader Graft node.
	InputNodeID graft.ID = "adapter.fs.input"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Input reader node
	graft.Register(graft.Node[ports.InputSource]{
		ID:        InputNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.InputSource, error) {
			return NewInputReader(), nil
		},
	})

	// Hasher node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
