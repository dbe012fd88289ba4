package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// CopyRule is a stage rule bound to absolute paths.
type CopyRule struct {
	SourceGlob        string
	SourceBaseFolder  string
	DestinationFolder string
	Excludes          []string
}

// Bind resolves the rule against the install folder of pkg and the build folder of layout.
func (r StageRule) Bind(pkg ResolvedPackage, layout LayoutConfig) (CopyRule, error) {
	if pkg.Name != r.Package {
		err := zerr.With(ErrUnresolvedPackage, "package", r.Package.String())
		return CopyRule{}, zerr.With(err, "resolved", pkg.Name.String())
	}
	if pkg.InstallFolder == "" {
		return CopyRule{}, zerr.With(ErrUnresolvedPackage, "package", r.Package.String())
	}

	pattern := r.Pattern
	if pattern == "" {
		pattern = "*"
	}

	return CopyRule{
		SourceGlob:        pattern,
		SourceBaseFolder:  resolveResourcePath(pkg.InstallFolder, r.From),
		DestinationFolder: resolveResourcePath(layout.Build, r.To),
		Excludes:          slices.Clone(r.Excludes),
	}, nil
}

// Validate rejects From and To folders that leave the install folder or the build folder.
func (r StageRule) Validate() error {
	for _, field := range []struct{ name, value string }{{"from", r.From}, {"to", r.To}} {
		if !isLocalResourcePath(field.value) {
			err := zerr.Wrap(ErrNonLocalStagePath, fmt.Sprintf("%s folder %q", field.name, field.value))
			return zerr.With(err, "package", r.Package.String())
		}
	}
	return nil
}

// isLocalResourcePath reports whether raw stays below the folder it is joined onto.
// A leading separator is accepted, as resolveResourcePath treats it as relative.
func isLocalResourcePath(raw string) bool {
	trimmed := strings.TrimLeft(raw, "/\\")
	return trimmed == "" || filepath.IsLocal(filepath.FromSlash(trimmed))
}

// resolveResourcePath joins raw onto baseDir, treating a leading separator as relative.
func resolveResourcePath(baseDir, raw string) string {
	trimmed := strings.TrimLeft(raw, "/\\")
	if trimmed == "" {
		return filepath.Clean(baseDir)
	}
	return filepath.Clean(filepath.Join(baseDir, filepath.FromSlash(trimmed)))
}
