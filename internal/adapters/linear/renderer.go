// Package linear provides a synchronous, line-buffered progress renderer.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer as chronological, prefixed log lines.
// Nested steps are indented below their parent.
type Renderer struct {
	out    io.Writer
	output *termenv.Output

	mu      sync.Mutex
	tasks   map[string]*taskState // spanID -> task state
	buffers map[string]*bytes.Buffer
}

type taskState struct {
	name      string
	depth     int
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to w, or os.Stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		out:     w,
		output:  output.NewWithProfile(w, output.ProfileANSI),
		tasks:   make(map[string]*taskState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// OnPlanEmit prints the planned steps.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(steps) == 0 {
		_, _ = fmt.Fprintln(r.out, "Nothing to do")
		return
	}
	_, _ = fmt.Fprintf(r.out, "Planning %d step(s): %s\n", len(steps), strings.Join(steps, ", "))
}

// OnTaskStart prints a step start message.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent, ok := r.tasks[parentID]; ok {
		depth = parent.depth + 1
	}

	r.tasks[spanID] = &taskState{
		name:      name,
		depth:     depth,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(r.prefixLocked(spanID)).Faint().String()
	_, _ = fmt.Fprintf(r.out, "%s Starting...\n", prefix)
}

// OnTaskLog buffers log data and prints complete lines with the step prefix.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[spanID]; !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				r.buffers[spanID] = newBuf
			}
			break
		}

		r.printLineLocked(spanID, line)
	}
}

// OnTaskComplete flushes the remaining buffer and prints the completion status.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := r.prefixLocked(spanID)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.out, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.out, "%s %s Completed in %v\n", prefix, symbol, duration)
	}

	delete(r.tasks, spanID)
	delete(r.buffers, spanID)
}

// prefixLocked returns the indented "[name]" prefix of a step.
// Must be called with r.mu held.
func (r *Renderer) prefixLocked(spanID string) string {
	task := r.tasks[spanID]
	return strings.Repeat("  ", task.depth) + "[" + task.name + "]"
}

// flushBufferLocked prints any partial line left in the buffer of a step.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	if _, ok := r.tasks[spanID]; !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(spanID, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the step prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(spanID string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.prefixLocked(spanID), string(line))
}
