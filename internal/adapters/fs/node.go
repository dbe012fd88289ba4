package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the tree hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// StagerNodeID is the unique identifier for the resource stager Graft node.
	StagerNodeID graft.ID = "adapter.fs.stager"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Stager]{
		ID:        StagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID},
		Run: func(ctx context.Context) (ports.Stager, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(walker, hasher), nil
		},
	})
}
