package ports

import "time"

// Renderer is the abstraction for progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once the pipeline knows which steps it will run, in order.
	OnPlanEmit(steps []string)

	// OnTaskStart is called when a step begins.
	// parentID is empty for the root span.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when a step emits output.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a step finishes. err is nil on success.
	OnTaskComplete(spanID string, endTime time.Time, err error)

	// Stop flushes any buffered output.
	Stop() error
}
