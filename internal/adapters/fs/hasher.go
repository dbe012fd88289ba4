package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of files and staged trees.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeTreeDigest hashes the files below root given as slash-separated relative paths.
// The digest covers both paths and contents and does not depend on the order of files.
func (h *Hasher) ComputeTreeDigest(root string, files []string) (string, error) {
	sums := make(map[string]uint64, len(files))
	for _, rel := range files {
		sum, err := h.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return "", err
		}
		sums[rel] = sum
	}
	return digestOf(sums), nil
}

// digestOf combines per-file hashes keyed by relative path into one digest.
func digestOf(sums map[string]uint64) string {
	paths := make([]string, 0, len(sums))
	for p := range sums {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	hasher := xxhash.New()
	var buf [8]byte
	for _, p := range paths {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], sums[p])
		_, _ = hasher.Write(buf[:])
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
