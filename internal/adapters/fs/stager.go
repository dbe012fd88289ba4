package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// Stager copies resource files out of installed packages into the build tree.
type Stager struct {
	walker *Walker
	hasher *Hasher
}

// NewStager creates a new Stager.
func NewStager(walker *Walker, hasher *Hasher) *Stager {
	return &Stager{walker: walker, hasher: hasher}
}

// Stage copies the files selected by rule from the package into the destination folder.
func (s *Stager) Stage(ctx context.Context, pkg domain.ResolvedPackage, rule domain.CopyRule) (domain.StageReport, error) {
	report := domain.StageReport{
		Package:     pkg.Name,
		Source:      rule.SourceBaseFolder,
		Destination: rule.DestinationFolder,
	}

	matcher, err := NewMatcher(rule.SourceGlob, rule.Excludes)
	if err != nil {
		return report, errors.Join(domain.ErrStageIO, err)
	}

	if err := checkInstallFolder(pkg); err != nil {
		return report, errors.Join(domain.ErrStageIO, err)
	}

	if err := os.MkdirAll(rule.DestinationFolder, domain.DirPerm); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrDestinationUnwritable.Error()), "path", rule.DestinationFolder)
		return report, errors.Join(domain.ErrStageIO, err)
	}

	info, err := os.Stat(rule.SourceBaseFolder)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		report.Digest, _ = s.hasher.ComputeTreeDigest(rule.DestinationFolder, nil)
		return report, nil
	case err != nil:
		err = zerr.With(zerr.Wrap(err, domain.ErrSourceWalkFailed.Error()), "path", rule.SourceBaseFolder)
		return report, errors.Join(domain.ErrStageIO, err)
	case !info.IsDir():
		err = zerr.With(domain.ErrSourceWalkFailed, "path", rule.SourceBaseFolder)
		return report, errors.Join(domain.ErrStageIO, err)
	}

	for path, walkErr := range s.walker.WalkFiles(rule.SourceBaseFolder) {
		if walkErr != nil {
			err = zerr.With(zerr.Wrap(walkErr, domain.ErrSourceWalkFailed.Error()), "path", rule.SourceBaseFolder)
			return report, errors.Join(domain.ErrStageIO, err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, zerr.With(zerr.Wrap(ctxErr, "staging interrupted"), "package", pkg.Name.String())
		}

		rel, relErr := filepath.Rel(rule.SourceBaseFolder, path)
		if relErr != nil {
			err = zerr.With(zerr.Wrap(relErr, domain.ErrSourceWalkFailed.Error()), "path", path)
			return report, errors.Join(domain.ErrStageIO, err)
		}
		rel = filepath.ToSlash(rel)
		if !matcher.Match(rel) {
			continue
		}

		dst := filepath.Join(rule.DestinationFolder, filepath.FromSlash(rel))
		if copyErr := copyFile(path, dst); copyErr != nil {
			err = zerr.With(zerr.Wrap(copyErr, domain.ErrFileCopyFailed.Error()), "path", rel)
			return report, errors.Join(domain.ErrStageIO, err)
		}
		report.Files = append(report.Files, rel)
	}

	slices.Sort(report.Files)
	report.Digest, err = s.hasher.ComputeTreeDigest(rule.DestinationFolder, report.Files)
	if err != nil {
		return report, errors.Join(domain.ErrStageIO, err)
	}
	return report, nil
}

// Unstage removes previously staged files and prunes folders left empty below destination.
func (s *Stager) Unstage(destination string, files []string) error {
	var errs error
	destination = filepath.Clean(destination)
	dirs := make(map[string]struct{})
	for _, rel := range files {
		path := filepath.Join(destination, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrFailedToCleanFile.Error()), "path", path))
			continue
		}
		for dir := filepath.Dir(path); dir != destination && len(dir) > len(destination); dir = filepath.Dir(dir) {
			dirs[dir] = struct{}{}
		}
	}

	// Deepest folders first so parents become empty before they are tried.
	ordered := make([]string, 0, len(dirs))
	for dir := range dirs {
		ordered = append(ordered, dir)
	}
	slices.SortFunc(ordered, func(a, b string) int { return len(b) - len(a) })
	for _, dir := range ordered {
		_ = os.Remove(dir) // fails on non-empty folders, which are kept
	}

	return errs
}

func checkInstallFolder(pkg domain.ResolvedPackage) error {
	info, err := os.Stat(pkg.InstallFolder)
	if err == nil && info.IsDir() {
		return nil
	}
	missing := zerr.With(domain.ErrInstallFolderMissing, "package", pkg.Name.String())
	missing = zerr.With(missing, "path", pkg.InstallFolder)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return errors.Join(missing, err)
	}
	return missing
}

// copyFile atomically replaces dst with the content of src, carrying over mode and
// modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from walking the package folder
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	info, err := in.Stat()
	if err != nil {
		return err
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".kiln-stage-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, in); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}

	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return err
	}

	return os.Rename(tmpName, dst)
}
