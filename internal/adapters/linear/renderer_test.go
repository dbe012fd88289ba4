package linear_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/linear"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	return linear.NewRenderer(&out), &out
}

func TestRenderer_StepLifecycle(t *testing.T) {
	r, out := newTestRenderer(t)

	r.OnPlanEmit([]string{"resolve", "layout", "stage"})
	assert.Equal(t, "Planning 3 step(s): resolve, layout, stage\n", out.String())
	out.Reset()

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.OnTaskStart("root", "", "generate", start)
	r.OnTaskStart("span1", "root", "stage imgui", start)
	r.OnTaskLog("span1", []byte("sdl3.cpp\nsdl3.h\n"))
	r.OnTaskComplete("span1", start.Add(12*time.Millisecond), nil)
	r.OnTaskComplete("root", start.Add(40*time.Millisecond), nil)
	require.NoError(t, r.Stop())

	assert.Equal(t, "[generate] Starting...\n"+
		"  [stage imgui] Starting...\n"+
		"  [stage imgui] sdl3.cpp\n"+
		"  [stage imgui] sdl3.h\n"+
		"  [stage imgui] ✓ Completed in 12ms\n"+
		"[generate] ✓ Completed in 40ms\n", out.String())
}

func TestRenderer_EmptyPlan(t *testing.T) {
	r, out := newTestRenderer(t)

	r.OnPlanEmit(nil)

	assert.Equal(t, "Nothing to do\n", out.String())
}

func TestRenderer_PartialLines(t *testing.T) {
	r, out := newTestRenderer(t)

	start := time.Now()
	r.OnTaskStart("span1", "", "stage", start)
	out.Reset()

	r.OnTaskLog("span1", []byte("partial"))
	assert.Empty(t, out.String(), "partial line should not be printed immediately")

	r.OnTaskLog("span1", []byte(" line\n"))
	assert.Equal(t, "[stage] partial line\n", out.String())

	r.OnTaskLog("span1", []byte("unflushed"))
	r.OnTaskComplete("span1", start, nil)
	assert.Contains(t, out.String(), "[stage] unflushed\n")
}

func TestRenderer_StepError(t *testing.T) {
	r, out := newTestRenderer(t)

	start := time.Now()
	r.OnTaskStart("span1", "", "resolve sdl/3.2.6", start)
	r.OnTaskComplete("span1", start.Add(time.Millisecond), zerr.With(domain.ErrPackageNotFound, "package", "sdl"))

	assert.Contains(t, out.String(), "[resolve sdl/3.2.6] ✗ Failed after 1ms: package not found in store")
}

func TestRenderer_UnknownSpan(t *testing.T) {
	r, out := newTestRenderer(t)

	r.OnTaskLog("unknown-span", []byte("should be ignored\n"))
	r.OnTaskComplete("unknown-span", time.Now(), nil)

	assert.Empty(t, out.String())
}

func TestRenderer_EmptyLines(t *testing.T) {
	r, out := newTestRenderer(t)

	r.OnTaskStart("span1", "", "stage", time.Now())
	out.Reset()

	r.OnTaskLog("span1", []byte("\n"))
	r.OnTaskLog("span1", []byte("\r\n"))

	assert.Empty(t, out.String())
}

func TestRenderer_StopFlushesBuffers(t *testing.T) {
	r, out := newTestRenderer(t)

	start := time.Now()
	r.OnTaskStart("span1", "", "stage imgui", start)
	r.OnTaskStart("span2", "", "stage sdl", start)
	r.OnTaskLog("span1", []byte("partial1"))
	r.OnTaskLog("span2", []byte("partial2"))

	require.NoError(t, r.Stop())

	assert.Contains(t, out.String(), "[stage imgui] partial1\n")
	assert.Contains(t, out.String(), "[stage sdl] partial2\n")
}

func TestRenderer_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var out bytes.Buffer
	r := linear.NewRenderer(&out)

	start := time.Now()
	r.OnTaskStart("span1", "", "layout", start)
	r.OnTaskComplete("span1", start, nil)

	assert.True(t, strings.Contains(out.String(), "\x1b["), "expected ANSI sequences, got %q", out.String())
}

func TestRenderer_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		r := linear.NewRenderer(nil)
		start := time.Now()
		r.OnTaskStart("span1", "", "layout", start)
		r.OnTaskComplete("span1", start, nil)
	})
}
