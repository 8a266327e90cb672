package days

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the solver registry Graft node.
const NodeID graft.ID = "days.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Registry, error) {
			return New(), nil
		},
	})
}
