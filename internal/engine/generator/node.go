package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/store"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the generator Graft node.
const NodeID graft.ID = "engine.generator"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			fs.StagerNodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			resolver, err := graft.Dep[ports.PackageResolver](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			records, err := graft.Dep[ports.StageRecordStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(resolver, stager, records, tracer, log), nil
		},
	})
}
