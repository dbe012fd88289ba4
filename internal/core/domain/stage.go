package domain

import "time"

// StageReport describes the files one staging step placed into its destination.
type StageReport struct {
	Package     InternedString
	Source      string
	Destination string
	// Files holds slash-separated paths relative to Destination, sorted.
	Files  []string
	Digest string
}

// Empty reports whether nothing was staged.
func (r StageReport) Empty() bool {
	return len(r.Files) == 0
}

// StageRecord is the persisted outcome of a staging step.
type StageRecord struct {
	RunID       string    `json:"run_id"`
	Package     string    `json:"package"`
	Version     string    `json:"version"`
	Destination string    `json:"destination"`
	Files       []string  `json:"files,omitzero"`
	Digest      string    `json:"digest,omitzero"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewStageRecord creates the record of report for the given run.
func NewStageRecord(runID string, pkg ResolvedPackage, report StageReport, now time.Time) StageRecord {
	return StageRecord{
		RunID:       runID,
		Package:     pkg.Name.String(),
		Version:     pkg.Version.String(),
		Destination: report.Destination,
		Files:       report.Files,
		Digest:      report.Digest,
		Timestamp:   now.UTC(),
	}
}
