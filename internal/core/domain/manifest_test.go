package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func newTestManifest() (*domain.Manifest, domain.ManifestParams) {
	params := domain.ManifestParams{
		Project:   "emulator",
		Dir:       "/work/emulator",
		StorePath: "/pkg",
		Settings: domain.Settings{
			OS: "Linux", Arch: "x86_64", Compiler: "gcc", BuildType: "Release",
		},
		Generators: []string{"CMakeDeps", "CMakeToolchain"},
		Requirements: []domain.DependencySpec{
			domain.NewDependencySpec("cxxopts", "3.2.0"),
			domain.NewDependencySpec("fmt", "11.0.2"),
			domain.NewDependencySpec("imgui", "1.91.8"),
		},
		StageRules: []domain.StageRule{
			{
				Package:  domain.NewInternedString("imgui"),
				Pattern:  "*sdl*",
				From:     "res/bindings",
				To:       "src/imgui/backends",
				Excludes: []string{"*.txt"},
			},
		},
	}
	return domain.NewManifest(params), params
}

func TestManifest_Requirements(t *testing.T) {
	m, params := newTestManifest()

	assert.ElementsMatch(t, params.Requirements, m.Requirements())
	assert.Equal(t, params.Requirements, m.Requirements(), "declaration order is kept")
}

func TestManifest_Immutable(t *testing.T) {
	m, params := newTestManifest()

	params.Requirements[0] = domain.NewDependencySpec("gtest", "1.16.0")
	params.StageRules[0].Excludes[0] = "*.md"
	params.Generators[0] = "Ninja"

	reqs := m.Requirements()
	reqs[1] = domain.NewDependencySpec("spdlog", "1.15.0")
	rules := m.StageRules()
	rules[0].Excludes[0] = "*.cmake"
	gens := m.Generators()
	gens[1] = "Make"

	assert.Equal(t, "cxxopts/3.2.0", m.Requirements()[0].String())
	assert.Equal(t, "fmt/11.0.2", m.Requirements()[1].String())
	assert.Equal(t, []string{"*.txt"}, m.StageRules()[0].Excludes)
	assert.Equal(t, []string{"CMakeDeps", "CMakeToolchain"}, m.Generators())
}

func TestManifest_Requirement(t *testing.T) {
	m, _ := newTestManifest()

	spec, ok := m.Requirement("imgui")
	assert.True(t, ok)
	assert.Equal(t, "1.91.8", spec.Version.String())

	_, ok = m.Requirement("sdl")
	assert.False(t, ok)
}

func TestManifest_Accessors(t *testing.T) {
	m, _ := newTestManifest()

	assert.Equal(t, "emulator", m.Project())
	assert.Equal(t, "/work/emulator", m.Dir())
	assert.Equal(t, "/pkg", m.StorePath())
	assert.Equal(t, "Release", m.Settings().BuildType)
	assert.Empty(t, m.LayoutOptions().Convention)
}
