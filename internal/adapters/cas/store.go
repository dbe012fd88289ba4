// Package cas implements content-addressed storage of stage records.
package cas

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StageRecordStore = (*Store)(nil)

const recordExt = ".json"

// Store implements ports.StageRecordStore using a file-per-record strategy.
// Records live below <root>/.kiln/store, named by the hash of package and destination.
type Store struct{}

// NewStore creates a new StageRecordStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record for pkg staged into destination.
func (s *Store) Get(root, pkg, destination string) (*domain.StageRecord, error) {
	return s.read(s.getFilename(root, pkg, destination))
}

// Put stores the record.
func (s *Store) Put(root string, record domain.StageRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, record.Package, record.Destination)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// List returns every stored record sorted by package, then destination.
func (s *Store) List(root string) ([]domain.StageRecord, error) {
	storeDir := filepath.Join(root, domain.DefaultRecordStorePath())
	entries, err := os.ReadDir(storeDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", storeDir)
	}

	records := make([]domain.StageRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		record, err := s.read(filepath.Join(storeDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, *record)
		}
	}

	slices.SortFunc(records, func(a, b domain.StageRecord) int {
		return cmp.Or(cmp.Compare(a.Package, b.Package), cmp.Compare(a.Destination, b.Destination))
	})
	return records, nil
}

// Delete removes the record.
func (s *Store) Delete(root string, record domain.StageRecord) error {
	filename := s.getFilename(root, record.Package, record.Destination)
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreDeleteFailed.Error()), "package", record.Package)
	}
	return nil
}

func (s *Store) read(filename string) (*domain.StageRecord, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var record domain.StageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	return &record, nil
}

func (s *Store) getFilename(root, pkg, destination string) string {
	hash := sha256.Sum256([]byte(pkg + "\x00" + destination))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultRecordStorePath())
	return filepath.Join(storeDir, hexHash+recordExt)
}
