package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		excludes []string
		path     string
		want     bool
	}{
		{name: "substring", pattern: "*sdl*", path: "sdl3.cpp", want: true},
		{name: "star crosses slash", pattern: "*sdl*", path: "platform/sdl3.h", want: true},
		{name: "no match", pattern: "*sdl*", path: "glfw.cpp", want: false},
		{name: "case insensitive", pattern: "*sdl*", path: "SDL3.H", want: true},
		{name: "question mark", pattern: "sdl?.h", path: "sdl3.h", want: true},
		{name: "character class", pattern: "sdl[23].h", path: "sdl4.h", want: false},
		{name: "exclude by path", pattern: "*", excludes: []string{"docs/*"}, path: "docs/sdl.md", want: false},
		{name: "exclude by name", pattern: "*", excludes: []string{"*.md"}, path: "docs/sdl.md", want: false},
		{name: "exclude misses", pattern: "*", excludes: []string{"*.md"}, path: "sdl3.cpp", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := fs.NewMatcher(tt.pattern, tt.excludes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestMatcher_InvalidPattern(t *testing.T) {
	_, err := fs.NewMatcher("[sdl", nil)
	require.ErrorContains(t, err, domain.ErrInvalidPattern.Error())

	_, err = fs.NewMatcher("*", []string{"sdl[2-"})
	require.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
}
