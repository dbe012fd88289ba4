package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// errStepFailed is reported for failed spans that carry no status description.
var errStepFailed = zerr.New("step failed")

// Bridge is a span processor that turns pipeline spans into renderer progress events.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer. A nil renderer drops every event.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart reports a started step together with the step it belongs to.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil || !s.SpanContext().IsValid() {
		return
	}
	b.renderer.OnTaskStart(spanID(s.SpanContext()), spanID(s.Parent()), s.Name(), s.StartTime())
}

// OnEnd reports a finished step. Spans with an error status complete with an error.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil || !s.SpanContext().IsValid() {
		return
	}
	b.renderer.OnTaskComplete(spanID(s.SpanContext()), s.EndTime(), statusError(s.Status()))
}

// ForceFlush does nothing; the renderer writes as events arrive.
func (b *Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown does nothing; the tracer stops the renderer itself.
func (b *Bridge) Shutdown(context.Context) error { return nil }

// spanID returns the hex id of sc, or "" when sc is not a valid span.
func spanID(sc trace.SpanContext) string {
	if !sc.IsValid() {
		return ""
	}
	return sc.SpanID().String()
}

func statusError(status sdktrace.Status) error {
	switch {
	case status.Code != codes.Error:
		return nil
	case status.Description == "":
		return errStepFailed
	default:
		return errors.New(status.Description)
	}
}
