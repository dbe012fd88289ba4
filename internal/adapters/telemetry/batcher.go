// Package telemetry provides the OpenTelemetry tracer used by the generation
// pipeline and forwards span activity to a progress renderer.
package telemetry

import (
	"bytes"
	"sync"

	"go.trai.ch/zerr"
)

// DefaultBatchSize is the number of buffered bytes that triggers a flush.
const DefaultBatchSize = 4096

var errBatcherClosed = zerr.New("log batcher is closed")

// LineBatcher collects span output and hands it to onFlush in whole lines.
// Complete lines are flushed once the buffer reaches the batch size; Close
// flushes the rest, including a trailing partial line.
type LineBatcher struct {
	size    int
	onFlush func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	closed bool
}

// NewLineBatcher returns a LineBatcher. A non-positive size selects DefaultBatchSize.
func NewLineBatcher(size int, onFlush func([]byte)) *LineBatcher {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &LineBatcher{size: size, onFlush: onFlush}
}

// Write buffers p and flushes complete lines when the batch size is reached.
func (b *LineBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errBatcherClosed
	}

	n, _ := b.buffer.Write(p)
	if b.buffer.Len() >= b.size {
		b.flushLines()
	}
	return n, nil
}

// Flush hands every complete buffered line to onFlush.
func (b *LineBatcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.flushLines()
	}
}

// Close flushes everything still buffered. Later writes fail.
func (b *LineBatcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.emit(b.buffer.Len())
	return nil
}

// flushLines must be called with mu held.
func (b *LineBatcher) flushLines() {
	if end := bytes.LastIndexByte(b.buffer.Bytes(), '\n'); end >= 0 {
		b.emit(end + 1)
	}
}

// emit passes the first n buffered bytes to onFlush. mu must be held.
func (b *LineBatcher) emit(n int) {
	if n == 0 {
		return
	}
	data := bytes.Clone(b.buffer.Next(n))
	if b.onFlush != nil {
		b.onFlush(data)
	}
}
