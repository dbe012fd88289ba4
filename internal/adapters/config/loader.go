// Package config provides the manifest loader for kiln.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	fs       FileSystem
	validate *validator.Validate
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{
		Logger:   logger,
		fs:       fsys,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load finds the nearest kiln.yaml at or above cwd and returns the manifest it declares.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var kilnfile Kilnfile
	if err := l.readAndUnmarshalYAML(configPath, &kilnfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if err := l.validate.Struct(&kilnfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)
	}

	return l.buildManifest(filepath.Dir(configPath), &kilnfile)
}

// DiscoverRoot returns the directory holding the nearest kiln.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// WriteDefault writes the default manifest into dir.
func (l *Loader) WriteDefault(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	path := filepath.Join(absDir, domain.KilnFileName)

	content, err := RenderDefault(filepath.Base(absDir), filepath.ToSlash(domain.DefaultPackageStorePath()))
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	//nolint:gosec // Path is the manifest in the requested project directory
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", zerr.With(domain.ErrConfigExists, "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}

	return path, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.KilnFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildManifest(dir string, kilnfile *Kilnfile) (*domain.Manifest, error) {
	requirements := make([]domain.DependencySpec, 0, len(kilnfile.Requires))
	seen := make(map[string]string, len(kilnfile.Requires))
	for _, ref := range kilnfile.Requires {
		spec, err := domain.ParseDependencySpec(ref)
		if err != nil {
			return nil, err
		}
		name := spec.Name.String()
		if first, ok := seen[name]; ok {
			dupErr := zerr.With(domain.ErrDuplicateRequirement, "package", name)
			dupErr = zerr.With(dupErr, "first_occurrence", first)
			return nil, zerr.With(dupErr, "duplicate", ref)
		}
		seen[name] = ref
		requirements = append(requirements, spec)
	}

	rules := make([]domain.StageRule, 0, len(kilnfile.Stage))
	for i, stage := range kilnfile.Stage {
		if _, ok := seen[stage.Package]; !ok {
			err := zerr.With(domain.ErrUnknownStagePackage, "package", stage.Package)
			return nil, zerr.With(err, "stage_index", i)
		}
		rule := domain.StageRule{
			Package:  domain.NewInternedString(stage.Package),
			Pattern:  stage.Pattern,
			From:     stage.From,
			To:       stage.To,
			Excludes: stage.Exclude,
		}
		if err := rule.Validate(); err != nil {
			return nil, zerr.With(err, "stage_index", i)
		}
		rules = append(rules, rule)
	}

	if len(kilnfile.Generators) == 0 {
		l.Logger.Warn(fmt.Sprintf("no generators declared in %s, downstream build files will not be prepared", domain.KilnFileName))
	}

	return domain.NewManifest(domain.ManifestParams{
		Project:   kilnfile.Project,
		Dir:       dir,
		StorePath: resolveStorePath(dir, kilnfile.Store),
		Settings: domain.Settings{
			OS:        kilnfile.Settings.OS,
			Arch:      kilnfile.Settings.Arch,
			Compiler:  kilnfile.Settings.Compiler,
			BuildType: kilnfile.Settings.BuildType,
		},
		Layout: domain.LayoutOptions{
			Convention: kilnfile.Layout.Convention,
			Source:     kilnfile.Layout.Source,
			Build:      kilnfile.Layout.Build,
			Generator:  kilnfile.Layout.Generator,
		},
		Generators:   kilnfile.Generators,
		Requirements: requirements,
		StageRules:   rules,
	}), nil
}

// resolveStorePath makes the configured store path absolute, relative to the manifest directory.
func resolveStorePath(dir, configured string) string {
	configured = strings.TrimSpace(configured)
	if configured == "" {
		configured = domain.DefaultPackageStorePath()
	}
	configured = filepath.FromSlash(configured)
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(dir, configured))
}

// readAndUnmarshalYAML reads a YAML file and strictly unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Kilnfile) error {
	configFile, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(configFile))
	decoder.KnownFields(true)
	if parseErr := decoder.Decode(target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
