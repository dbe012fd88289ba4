package fs

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Matcher selects files by slash-separated relative path.
// Patterns use fnmatch semantics: '*' also crosses '/'. Matching ignores case.
type Matcher struct {
	include  glob.Glob
	excludes []glob.Glob
}

// NewMatcher compiles an include pattern and its excludes.
func NewMatcher(pattern string, excludes []string) (*Matcher, error) {
	include, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	m := &Matcher{include: include, excludes: make([]glob.Glob, 0, len(excludes))}
	for _, ex := range excludes {
		g, err := compilePattern(ex)
		if err != nil {
			return nil, err
		}
		m.excludes = append(m.excludes, g)
	}
	return m, nil
}

// Match reports whether rel is selected by the include pattern and by no exclude.
// Excludes are tried against the full relative path and against the file name.
func (m *Matcher) Match(rel string) bool {
	rel = strings.ToLower(rel)
	if !m.include.Match(rel) {
		return false
	}
	base := path.Base(rel)
	for _, ex := range m.excludes {
		if ex.Match(rel) || ex.Match(base) {
			return false
		}
	}
	return true
}

func compilePattern(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
	}
	return g, nil
}
