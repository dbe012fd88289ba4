package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "plain error",
			err:  errors.New("permission denied"),
			want: []logger.ErrorEntry{{Message: "permission denied"}},
		},
		{
			name: "sentinel",
			err:  domain.ErrPackageNotFound,
			want: []logger.ErrorEntry{{Message: "package not found in store", Metadata: map[string]any{}}},
		},
		{
			name: "wrapped chain ends at the plain cause",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("read-only file system"), domain.ErrFileCopyFailed.Error()),
				"staging interrupted",
			),
			want: []logger.ErrorEntry{
				{Message: "staging interrupted", Metadata: map[string]any{}},
				{Message: "failed to copy file", Metadata: map[string]any{}},
				{Message: "read-only file system"},
			},
		},
		{
			name: "metadata accumulates on one entry",
			err: zerr.With(
				zerr.With(domain.ErrPackageNotFound, "package", "imgui"),
				"version", "1.91.8",
			),
			want: []logger.ErrorEntry{{
				Message:  "package not found in store",
				Metadata: map[string]any{"package": "imgui", "version": "1.91.8"},
			}},
		},
		{
			name: "joined category and detail",
			err:  errors.Join(domain.ErrResolution, zerr.With(domain.ErrMalformedVersion, "version", "latest")),
			want: []logger.ErrorEntry{
				{Message: "dependency resolution failed", Metadata: map[string]any{}},
				{Message: "malformed version", Metadata: map[string]any{"version": "latest"}},
			},
		},
		{
			name: "metadata on a plain error moves to the cause",
			err:  zerr.With(errors.New("no space left on device"), "path", "/build"),
			want: []logger.ErrorEntry{
				{Message: "no space left on device", Metadata: map[string]any{"path": "/build"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    "",
		},
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "could not find kiln.yaml"}},
			want:    "Error: could not find kiln.yaml",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "staging i/o failed"},
				{Message: "failed to copy file"},
				{Message: "read-only file system"},
			},
			want: "Error: staging i/o failed\n\n  Caused by:\n    → failed to copy file\n    → read-only file system",
		},
		{
			name: "sorted metadata on main error and cause",
			entries: []logger.ErrorEntry{
				{Message: "package not found in store", Metadata: map[string]any{"version": "1.91.8", "package": "imgui"}},
				{Message: "stat failed", Metadata: map[string]any{"path": "/store/imgui/1.91.8"}},
			},
			want: "Error: package not found in store\n" +
				"       package: imgui\n" +
				"       version: 1.91.8\n\n" +
				"  Caused by:\n" +
				"    → stat failed\n" +
				"      path: /store/imgui/1.91.8",
		},
		{
			name: "multiline messages keep the indent",
			entries: []logger.ErrorEntry{
				{Message: "invalid config file\nline 3: unknown field"},
				{Message: "yaml: line 3\nfield stagee not found"},
			},
			want: "Error: invalid config file\n" +
				"       line 3: unknown field\n\n" +
				"  Caused by:\n" +
				"    → yaml: line 3\n" +
				"      field stagee not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestCollectAndFormat_StageFailure(t *testing.T) {
	detail := zerr.With(zerr.Wrap(errors.New("permission denied"), domain.ErrDestinationUnwritable.Error()),
		"path", "/build/src/imgui/backends")
	err := errors.Join(domain.ErrStageIO, detail)

	got := logger.FormatErrorEntriesExported(logger.CollectErrorEntriesExported(err))
	assert.Equal(t,
		"Error: staging i/o failed\n\n"+
			"  Caused by:\n"+
			"    → destination folder is not writable\n"+
			"      path: /build/src/imgui/backends\n"+
			"    → permission denied",
		got)
}
