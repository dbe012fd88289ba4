package generator

import "time"

// WithClock fixes the clock and run id source for tests.
func (g *Generator) WithClock(now func() time.Time, runID func() string) *Generator {
	g.now = now
	g.newRunID = runID
	return g
}
