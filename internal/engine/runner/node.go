package runner

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Runner, error) {
			return New(), nil
		},
	})
}
