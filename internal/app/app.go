// Package app implements the application layer for kiln.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/kiln/internal/adapters/detector"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/generator"
	"go.trai.ch/zerr"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Shutdown flushes the progress renderer and stops tracing.
func (c *Components) Shutdown(ctx context.Context) error {
	if s, ok := c.Tracer.(shutdowner); ok {
		return s.Shutdown(ctx)
	}
	return nil
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	generator    *generator.Generator
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, gen *generator.Generator, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		generator:    gen,
		logger:       log,
	}
}

// SetLogFormat applies the --log-format flag. JSON output also silences the
// progress renderer so stderr stays machine-readable.
func (a *App) SetLogFormat(flag string) error {
	format, err := detector.ResolveFormat(detector.DetectEnvironment(), flag)
	if err != nil {
		return err
	}

	if switcher, ok := a.logger.(jsonSwitcher); ok {
		switcher.SetJSON(format == detector.FormatJSON)
	}
	if format == detector.FormatJSON {
		a.generator = a.generator.WithTracer(telemetry.NewNoOpTracer())
	}
	return nil
}

// Generate runs the full pipeline for the manifest found from cwd.
func (a *App) Generate(ctx context.Context, cwd string) (generator.Result, error) {
	manifest, err := a.load(cwd)
	if err != nil {
		return generator.Result{}, err
	}

	result, err := a.generator.Generate(ctx, manifest)
	if err != nil {
		return result, err
	}

	staged := 0
	for _, stage := range result.Stages {
		staged += len(stage.Report.Files)
	}
	a.logger.Info(fmt.Sprintf("generated %s: %d package(s) resolved, %d file(s) staged",
		manifest.Project(), len(result.Packages), staged))
	return result, nil
}

// Requirements returns the dependencies declared by the manifest found from cwd.
func (a *App) Requirements(cwd string) ([]domain.DependencySpec, error) {
	manifest, err := a.load(cwd)
	if err != nil {
		return nil, err
	}
	return manifest.Requirements(), nil
}

// Resolve resolves every declared dependency against the package store.
func (a *App) Resolve(ctx context.Context, cwd string) ([]domain.ResolvedPackage, error) {
	manifest, err := a.load(cwd)
	if err != nil {
		return nil, err
	}
	return a.generator.Resolve(ctx, manifest)
}

// Layout returns the folder layout of the project found from cwd.
func (a *App) Layout(cwd string) (domain.LayoutConfig, error) {
	manifest, err := a.load(cwd)
	if err != nil {
		return domain.LayoutConfig{}, err
	}
	return domain.SelectLayout(manifest.Dir(), manifest.LayoutOptions(), manifest.Settings())
}

// Clean removes every staged file recorded for the project found from cwd.
func (a *App) Clean(ctx context.Context, cwd string) ([]domain.StageRecord, error) {
	root, err := a.configLoader.DiscoverRoot(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	cleaned, err := a.generator.Clean(ctx, root)
	for _, record := range cleaned {
		a.logger.Info(fmt.Sprintf("removed %d file(s) staged from %s into %s",
			len(record.Files), record.Package, record.Destination))
	}
	return cleaned, err
}

// Init writes the default manifest into cwd.
func (a *App) Init(cwd string) (string, error) {
	path, err := a.configLoader.WriteDefault(cwd)
	if err != nil {
		return "", err
	}
	a.logger.Info("created " + path)
	return path, nil
}

func (a *App) load(cwd string) (*domain.Manifest, error) {
	manifest, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return manifest, nil
}
