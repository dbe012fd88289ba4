package domain

import "slices"

// Settings is the build profile a run targets.
type Settings struct {
	OS        string
	Arch      string
	Compiler  string
	BuildType string
}

// LayoutOptions configures how the layout selector maps the project root.
// Empty fields fall back to the convention defaults.
type LayoutOptions struct {
	Convention string
	Source     string
	Build      string
	Generator  string
}

// StageRule describes one copy step as written in the manifest.
// From is relative to the package install folder, To is relative to the build folder.
type StageRule struct {
	Package  InternedString
	Pattern  string
	From     string
	To       string
	Excludes []string
}

// ManifestParams holds the values a Manifest is built from.
type ManifestParams struct {
	Project      string
	Dir          string
	StorePath    string
	Settings     Settings
	Layout       LayoutOptions
	Generators   []string
	Requirements []DependencySpec
	StageRules   []StageRule
}

// Manifest is the immutable project configuration shared by every step of a run.
type Manifest struct {
	project      string
	dir          string
	storePath    string
	settings     Settings
	layout       LayoutOptions
	generators   []string
	requirements []DependencySpec
	stageRules   []StageRule
}

// NewManifest creates a Manifest from params. Slices are copied so later
// changes to params do not leak into the manifest.
func NewManifest(params ManifestParams) *Manifest {
	rules := make([]StageRule, len(params.StageRules))
	for i, r := range params.StageRules {
		r.Excludes = slices.Clone(r.Excludes)
		rules[i] = r
	}
	return &Manifest{
		project:      params.Project,
		dir:          params.Dir,
		storePath:    params.StorePath,
		settings:     params.Settings,
		layout:       params.Layout,
		generators:   slices.Clone(params.Generators),
		requirements: slices.Clone(params.Requirements),
		stageRules:   rules,
	}
}

// Project returns the project name.
func (m *Manifest) Project() string { return m.project }

// Dir returns the directory the manifest was loaded from.
func (m *Manifest) Dir() string { return m.dir }

// StorePath returns the package store path as configured.
func (m *Manifest) StorePath() string { return m.storePath }

// Settings returns the build profile.
func (m *Manifest) Settings() Settings { return m.settings }

// LayoutOptions returns the layout configuration.
func (m *Manifest) LayoutOptions() LayoutOptions { return m.layout }

// Generators returns the downstream generators the build tree is prepared for.
func (m *Manifest) Generators() []string { return slices.Clone(m.generators) }

// Requirements returns the declared dependencies in declaration order.
// The returned slice is a copy.
func (m *Manifest) Requirements() []DependencySpec {
	return slices.Clone(m.requirements)
}

// Requirement looks up a declared dependency by package name.
func (m *Manifest) Requirement(name string) (DependencySpec, bool) {
	for _, r := range m.requirements {
		if r.Name.String() == name {
			return r, true
		}
	}
	return DependencySpec{}, false
}

// StageRules returns the copy steps in declaration order.
func (m *Manifest) StageRules() []StageRule {
	rules := make([]StageRule, len(m.stageRules))
	for i, r := range m.stageRules {
		r.Excludes = slices.Clone(r.Excludes)
		rules[i] = r
	}
	return rules
}
