package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/resumedb"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ resumedb.ScanService = (*ScanService)(nil)

// ScanService implements resumedb.ScanService using SQLite.
type ScanService struct {
	db *DB
}

// NewScanService creates a new ScanService.
func NewScanService(db *DB) *ScanService {
	return &ScanService{db: db}
}

// CreateScan records the start of a scan.
func (s *ScanService) CreateScan(ctx context.Context, scan *resumedb.Scan) error {
	if err := scan.Validate(); err != nil {
		return err
	}

	scan.ID = uuid.New().String()
	scan.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scans (id, root, started_at)
		VALUES (?, ?, ?)
	`, scan.ID, scan.Root, scan.StartedAt.Format(time.RFC3339))
	if err != nil {
		return storageError(err, "failed to record scan")
	}
	return nil
}

// FinishScan stores the final counts and completion time of a scan.
func (s *ScanService) FinishScan(ctx context.Context, id string, counts resumedb.Counts) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE scans
		SET processed = ?, stored = ?, skipped = ?, ignored = ?, failed = ?, finished_at = ?
		WHERE id = ?
	`, counts.Processed, counts.Stored, counts.Skipped, counts.Ignored, counts.Failed,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return storageError(err, "failed to finish scan")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return resumedb.Errorf(resumedb.ENOTFOUND, "scan not found")
	}

	return nil
}

// FindScans returns the most recent scans first. A limit <= 0 returns all.
func (s *ScanService) FindScans(ctx context.Context, limit int) ([]*resumedb.Scan, error) {
	query := `
		SELECT id, root, processed, stored, skipped, ignored, failed, started_at, finished_at
		FROM scans
		ORDER BY started_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to query scans")
	}
	defer rows.Close()

	var scans []*resumedb.Scan
	for rows.Next() {
		var scan resumedb.Scan
		var startedAt, finishedAt string

		if err := rows.Scan(&scan.ID, &scan.Root, &scan.Counts.Processed, &scan.Counts.Stored,
			&scan.Counts.Skipped, &scan.Counts.Ignored, &scan.Counts.Failed,
			&startedAt, &finishedAt); err != nil {
			return nil, storageError(err, "failed to scan scan row")
		}

		if scan.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if finishedAt != "" {
			if scan.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
				return nil, err
			}
		}

		scans = append(scans, &scan)
	}

	return scans, rows.Err()
}
