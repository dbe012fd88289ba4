package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the stage record store Graft node.
const NodeID graft.ID = "adapter.stage_record_store"

func init() {
	graft.Register(graft.Node[ports.StageRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StageRecordStore, error) {
			return NewStore(), nil
		},
	})
}
