package resumedb

import (
	"context"
	"time"
)

// Scan represents one run over a root directory.
type Scan struct {
	ID         string    `json:"id"`
	Root       string    `json:"root"`
	Counts     Counts    `json:"counts"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Counts holds per-outcome file counts for a scan.
type Counts struct {
	Processed int `json:"processed"`
	Stored    int `json:"stored"`
	Skipped   int `json:"skipped"`
	Ignored   int `json:"ignored"`
	Failed    int `json:"failed"`
}

// Validate returns an error if the scan contains invalid fields.
func (s *Scan) Validate() error {
	if s.Root == "" {
		return Errorf(EINVALID, "scan root required")
	}
	return nil
}

// ScanService records the history of scans.
type ScanService interface {
	// CreateScan records the start of a scan and assigns its ID.
	CreateScan(ctx context.Context, scan *Scan) error

	// FinishScan stores the final counts of a scan.
	// Returns ENOTFOUND if scan does not exist.
	FinishScan(ctx context.Context, id string, counts Counts) error

	// FindScans returns the most recent scans first.
	FindScans(ctx context.Context, limit int) ([]*Scan, error)
}
