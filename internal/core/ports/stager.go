package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Stager copies resource files from a resolved package into the build tree.
//
//go:generate mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// Stage copies every file under rule.SourceBaseFolder matching rule.SourceGlob
	// into rule.DestinationFolder, keeping relative paths.
	//
	// A missing source folder or an empty match set is a success with an empty report.
	// Errors are classified with domain.ErrStageIO.
	Stage(ctx context.Context, pkg domain.ResolvedPackage, rule domain.CopyRule) (domain.StageReport, error)

	// Unstage removes files previously staged into destination.
	// Files that no longer exist are ignored.
	Unstage(destination string, files []string) error
}
