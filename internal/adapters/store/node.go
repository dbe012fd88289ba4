package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the package resolver Graft node.
const NodeID graft.ID = "adapter.package_resolver"

func init() {
	graft.Register(graft.Node[ports.PackageResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageResolver, error) {
			return NewResolver(), nil
		},
	})
}
