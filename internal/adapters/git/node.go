package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/shell"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the cloner Graft node.
const NodeID graft.ID = "adapter.git.cloner"

func init() {
	graft.Register(graft.Node[ports.Cloner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Cloner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewCloner(executor), nil
		},
	})
}
