package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/illBeRoy/advent-2022/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"github.com/illBeRoy/advent-2022/internal/core/ports"
)

// NodeID is the unique identifier for the answer store Graft node.
const NodeID graft.ID = "adapter.answer_store"

func init() {
	graft.Register(graft.Node[ports.AnswerStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.AnswerStore, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}

			return NewStore(cfg.CachePath)
		},
	})
}
