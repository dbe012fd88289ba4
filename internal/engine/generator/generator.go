// Package generator runs the build-environment generation pipeline: declared
// requirements are resolved against the package store, the folder layout is
// selected, and package resources are staged into the build tree.
package generator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator executes a manifest from resolution to staging.
type Generator struct {
	resolver ports.PackageResolver
	stager   ports.Stager
	store    ports.StageRecordStore
	tracer   ports.Tracer
	logger   ports.Logger

	now      func() time.Time
	newRunID func() string
}

// NewGenerator creates a new Generator with the given dependencies.
func NewGenerator(
	resolver ports.PackageResolver,
	stager ports.Stager,
	store ports.StageRecordStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Generator {
	return &Generator{
		resolver: resolver,
		stager:   stager,
		store:    store,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// WithTracer returns a copy of the generator that reports spans to tracer.
func (g *Generator) WithTracer(tracer ports.Tracer) *Generator {
	clone := *g
	clone.tracer = tracer
	return &clone
}

// StageResult is the outcome of one stage rule.
type StageResult struct {
	Report domain.StageReport
	// Changed is false when the staged tree has the digest recorded by the previous run.
	Changed bool
	// Removed lists files staged by the previous run that no longer match.
	Removed []string
}

// Result is the outcome of a generation run.
type Result struct {
	RunID    string
	Packages []domain.ResolvedPackage
	Layout   domain.LayoutConfig
	Stages   []StageResult
}

// Generate resolves every requirement of m, selects the layout and applies its stage rules.
// Any failure aborts the run; nothing is written before all requirements resolve.
func (g *Generator) Generate(ctx context.Context, m *domain.Manifest) (Result, error) {
	result := Result{RunID: g.newRunID()}

	ctx, span := g.tracer.Start(ctx, "generate",
		ports.WithAttribute("kiln.run_id", result.RunID),
		ports.WithAttribute("kiln.project", m.Project()),
	)
	defer span.End()

	requirements := m.Requirements()
	rules := m.StageRules()
	g.tracer.EmitPlan(ctx, plan(requirements, rules))

	packages, err := g.resolveAll(ctx, m.StorePath(), requirements)
	if err != nil {
		span.RecordError(err)
		return result, err
	}
	result.Packages = packages

	layout, err := g.selectLayout(ctx, m)
	if err != nil {
		span.RecordError(err)
		return result, err
	}
	result.Layout = layout

	for _, rule := range rules {
		stage, err := g.stage(ctx, m.Dir(), result.RunID, packages, layout, rule)
		if err != nil {
			span.RecordError(err)
			return result, err
		}
		result.Stages = append(result.Stages, stage)
	}

	return result, nil
}

// Resolve resolves every requirement of m in declaration order.
func (g *Generator) Resolve(ctx context.Context, m *domain.Manifest) ([]domain.ResolvedPackage, error) {
	ctx, span := g.tracer.Start(ctx, "resolve", ports.WithAttribute("kiln.project", m.Project()))
	defer span.End()

	packages, err := g.resolveAll(ctx, m.StorePath(), m.Requirements())
	if err != nil {
		span.RecordError(err)
	}
	return packages, err
}

// Clean removes every file recorded by previous stagings under root, then the records.
// Failures are collected so one broken record does not keep the others in place.
func (g *Generator) Clean(ctx context.Context, root string) ([]domain.StageRecord, error) {
	records, err := g.store.List(root)
	if err != nil {
		return nil, err
	}

	var cleaned []domain.StageRecord
	var errs error
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return cleaned, errors.Join(errs, zerr.Wrap(err, "clean interrupted"))
		}

		if err := g.stager.Unstage(record.Destination, record.Files); err != nil {
			errs = errors.Join(errs, zerr.With(err, "package", record.Package))
			continue
		}
		if err := g.store.Delete(root, record); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		cleaned = append(cleaned, record)
	}

	return cleaned, errs
}

func (g *Generator) resolveAll(
	ctx context.Context,
	storeRoot string,
	requirements []domain.DependencySpec,
) ([]domain.ResolvedPackage, error) {
	packages := make([]domain.ResolvedPackage, 0, len(requirements))
	for _, spec := range requirements {
		pkg, err := g.resolveOne(ctx, storeRoot, spec)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func (g *Generator) resolveOne(ctx context.Context, storeRoot string, spec domain.DependencySpec) (domain.ResolvedPackage, error) {
	ctx, span := g.tracer.Start(ctx, "resolve "+spec.String())
	defer span.End()

	pkg, err := g.resolver.Resolve(ctx, storeRoot, spec)
	if err != nil {
		span.RecordError(err)
		return domain.ResolvedPackage{}, err
	}

	span.SetAttribute("kiln.install_folder", pkg.InstallFolder)
	return pkg, nil
}

func (g *Generator) selectLayout(ctx context.Context, m *domain.Manifest) (domain.LayoutConfig, error) {
	_, span := g.tracer.Start(ctx, "layout")
	defer span.End()

	layout, err := domain.SelectLayout(m.Dir(), m.LayoutOptions(), m.Settings())
	if err != nil {
		span.RecordError(err)
		return domain.LayoutConfig{}, err
	}

	for _, role := range layout.Roles() {
		path, _ := layout.Path(role)
		span.SetAttribute("kiln.layout."+string(role), path)
	}
	return layout, nil
}

func (g *Generator) stage(
	ctx context.Context,
	root, runID string,
	packages []domain.ResolvedPackage,
	layout domain.LayoutConfig,
	rule domain.StageRule,
) (StageResult, error) {
	ctx, span := g.tracer.Start(ctx, "stage "+rule.Package.String(),
		ports.WithAttribute("kiln.pattern", rule.Pattern),
	)
	defer span.End()

	result, err := g.stageRule(ctx, span, root, runID, packages, layout, rule)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

func (g *Generator) stageRule(
	ctx context.Context,
	span ports.Span,
	root, runID string,
	packages []domain.ResolvedPackage,
	layout domain.LayoutConfig,
	rule domain.StageRule,
) (StageResult, error) {
	idx := slices.IndexFunc(packages, func(p domain.ResolvedPackage) bool { return p.Name == rule.Package })
	if idx < 0 {
		return StageResult{}, errors.Join(domain.ErrResolution,
			zerr.With(domain.ErrUnresolvedPackage, "package", rule.Package.String()))
	}
	pkg := packages[idx]

	copyRule, err := rule.Bind(pkg, layout)
	if err != nil {
		return StageResult{}, errors.Join(domain.ErrResolution, err)
	}

	previous, err := g.store.Get(root, pkg.Name.String(), copyRule.DestinationFolder)
	if err != nil {
		return StageResult{}, errors.Join(domain.ErrStageIO, err)
	}

	report, err := g.stager.Stage(ctx, pkg, copyRule)
	if err != nil {
		return StageResult{}, err
	}

	for _, file := range report.Files {
		_, _ = fmt.Fprintln(span, file)
	}
	span.SetAttribute("kiln.files", len(report.Files))
	span.SetAttribute("kiln.digest", report.Digest)

	if report.Empty() {
		g.logger.Warn(fmt.Sprintf("stage rule for %s matched no files with pattern %q in %s",
			pkg.Name, copyRule.SourceGlob, copyRule.SourceBaseFolder))
	}

	result := StageResult{Report: report, Changed: true}
	if previous != nil {
		result.Changed = previous.Digest != report.Digest
		result.Removed = staleFiles(previous.Files, report.Files)
		if len(result.Removed) > 0 {
			if err := g.stager.Unstage(copyRule.DestinationFolder, result.Removed); err != nil {
				return result, errors.Join(domain.ErrStageIO, err)
			}
		}
	}

	record := domain.NewStageRecord(runID, pkg, report, g.now())
	if err := g.store.Put(root, record); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrRecordUpdateFailed.Error()), "package", record.Package)
		return result, errors.Join(domain.ErrStageIO, err)
	}

	return result, nil
}

// plan lists the step names a run will execute, in order.
func plan(requirements []domain.DependencySpec, rules []domain.StageRule) []string {
	steps := make([]string, 0, len(requirements)+len(rules)+1)
	for _, spec := range requirements {
		steps = append(steps, "resolve "+spec.String())
	}
	steps = append(steps, "layout")
	for _, rule := range rules {
		steps = append(steps, "stage "+rule.Package.String())
	}
	return steps
}

// staleFiles returns the previous files missing from current. Both are sorted.
func staleFiles(previous, current []string) []string {
	var stale []string
	for _, file := range previous {
		if _, found := slices.BinarySearch(current, file); !found {
			stale = append(stale, file)
		}
	}
	return stale
}
