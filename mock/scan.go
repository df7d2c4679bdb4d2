package mock

import (
	"context"

	"github.com/fwojciec/resumedb"
)

var _ resumedb.ScanService = (*ScanService)(nil)

// ScanService is a mock implementation of resumedb.ScanService.
type ScanService struct {
	CreateScanFn func(ctx context.Context, scan *resumedb.Scan) error
	FinishScanFn func(ctx context.Context, id string, counts resumedb.Counts) error
	FindScansFn  func(ctx context.Context, limit int) ([]*resumedb.Scan, error)
}

func (s *ScanService) CreateScan(ctx context.Context, scan *resumedb.Scan) error {
	return s.CreateScanFn(ctx, scan)
}

func (s *ScanService) FinishScan(ctx context.Context, id string, counts resumedb.Counts) error {
	return s.FinishScanFn(ctx, id, counts)
}

func (s *ScanService) FindScans(ctx context.Context, limit int) ([]*resumedb.Scan, error) {
	return s.FindScansFn(ctx, limit)
}
