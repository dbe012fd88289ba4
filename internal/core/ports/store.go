package ports

import "go.trai.ch/kiln/internal/core/domain"

// StageRecordStore persists the outcome of staging steps under a project root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StageRecordStore interface {
	// Get retrieves the record for a package staged into destination.
	// Returns nil, nil if not found.
	Get(root, pkg, destination string) (*domain.StageRecord, error)

	// Put stores the record, replacing any previous record for the same package and destination.
	Put(root string, record domain.StageRecord) error

	// List returns all stored records ordered by package and destination.
	List(root string) ([]domain.StageRecord, error)

	// Delete removes the record. Deleting a missing record is not an error.
	Delete(root string, record domain.StageRecord) error
}
