package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestSelectLayout(t *testing.T) {
	root := t.TempDir()
	release := domain.Settings{BuildType: "Release"}

	tests := []struct {
		name     string
		opts     domain.LayoutOptions
		settings domain.Settings
		wantSrc  string
		wantBld  string
	}{
		{
			name:     "single config defaults",
			settings: release,
			wantSrc:  root,
			wantBld:  filepath.Join(root, "build", "Release"),
		},
		{
			name:     "debug build type",
			settings: domain.Settings{BuildType: "Debug"},
			wantSrc:  root,
			wantBld:  filepath.Join(root, "build", "Debug"),
		},
		{
			name:     "multi config generator",
			opts:     domain.LayoutOptions{Generator: "Ninja Multi-Config"},
			settings: release,
			wantSrc:  root,
			wantBld:  filepath.Join(root, "build"),
		},
		{
			name:    "visual studio needs no build type",
			opts:    domain.LayoutOptions{Generator: "Visual Studio 17 2022"},
			wantSrc: root,
			wantBld: filepath.Join(root, "build"),
		},
		{
			name:     "msvc defaults to multi config",
			settings: domain.Settings{Compiler: "msvc", BuildType: "Release"},
			wantSrc:  root,
			wantBld:  filepath.Join(root, "build"),
		},
		{
			name:     "msvc needs no build type",
			settings: domain.Settings{Compiler: "msvc"},
			wantSrc:  root,
			wantBld:  filepath.Join(root, "build"),
		},
		{
			name:     "explicit single config generator overrides msvc",
			opts:     domain.LayoutOptions{Generator: "Ninja"},
			settings: domain.Settings{Compiler: "msvc", BuildType: "Debug"},
			wantSrc:  root,
			wantBld:  filepath.Join(root, "build", "Debug"),
		},
		{
			name:     "custom folders",
			opts:     domain.LayoutOptions{Convention: "cmake", Source: "src", Build: "out"},
			settings: release,
			wantSrc:  filepath.Join(root, "src"),
			wantBld:  filepath.Join(root, "out", "Release"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := domain.SelectLayout(root, tt.opts, tt.settings)
			require.NoError(t, err)

			assert.Equal(t, domain.ConventionCMake, layout.Convention)
			assert.Equal(t, root, layout.Root)
			assert.Equal(t, tt.wantSrc, layout.Source)
			assert.Equal(t, tt.wantBld, layout.Build)
			assert.Equal(t, filepath.Join(tt.wantBld, "generators"), layout.Generators)
		})
	}
}

func TestSelectLayout_Stable(t *testing.T) {
	root := t.TempDir()
	settings := domain.Settings{BuildType: "Release"}

	first, err := domain.SelectLayout(root, domain.LayoutOptions{}, settings)
	require.NoError(t, err)
	second, err := domain.SelectLayout(root, domain.LayoutOptions{}, settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectLayout_Errors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "CMakeLists.txt")
	require.NoError(t, os.WriteFile(file, []byte("project(emu)\n"), domain.FilePerm))

	tests := []struct {
		name     string
		root     string
		opts     domain.LayoutOptions
		settings domain.Settings
		detail   error
	}{
		{name: "empty root", root: "", settings: domain.Settings{BuildType: "Release"}, detail: domain.ErrEmptyRoot},
		{name: "missing root", root: filepath.Join(root, "missing"), settings: domain.Settings{BuildType: "Release"}, detail: domain.ErrRootMissing},
		{name: "root is a file", root: file, settings: domain.Settings{BuildType: "Release"}, detail: domain.ErrRootNotDirectory},
		{name: "unknown convention", root: root, opts: domain.LayoutOptions{Convention: "bazel"}, settings: domain.Settings{BuildType: "Release"}, detail: domain.ErrUnknownConvention},
		{name: "missing build type", root: root, detail: domain.ErrMissingBuildType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.SelectLayout(tt.root, tt.opts, tt.settings)
			require.ErrorIs(t, err, domain.ErrLayout)
			require.ErrorContains(t, err, tt.detail.Error())
		})
	}
}

func TestLayoutConfig_Path(t *testing.T) {
	layout := domain.LayoutConfig{Source: "/src", Build: "/build", Generators: "/build/generators"}

	for _, role := range layout.Roles() {
		path, ok := layout.Path(role)
		assert.True(t, ok, role)
		assert.NotEmpty(t, path, role)
	}

	_, ok := layout.Path(domain.Role("install"))
	assert.False(t, ok)
	assert.Equal(t, []domain.Role{domain.RoleSource, domain.RoleBuild, domain.RoleGenerators}, layout.Roles())
}

func TestIsMultiConfig(t *testing.T) {
	assert.True(t, domain.IsMultiConfig("Xcode"))
	assert.True(t, domain.IsMultiConfig("Ninja Multi-Config"))
	assert.True(t, domain.IsMultiConfig("Visual Studio 17 2022"))
	assert.False(t, domain.IsMultiConfig("Ninja"))
	assert.False(t, domain.IsMultiConfig(""))
}
