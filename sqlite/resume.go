package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/resumedb"
)

// Compile-time interface verification.
var _ resumedb.ResumeService = (*ResumeService)(nil)

// ResumeService implements resumedb.ResumeService using SQLite.
type ResumeService struct {
	db *DB
}

// NewResumeService creates a new ResumeService.
func NewResumeService(db *DB) *ResumeService {
	return &ResumeService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// UpsertResume inserts the resume or replaces the row stored under the same
// path. The resume row, its metadata and its parsed sections are written in
// one transaction. Reports whether the content differs from what was stored.
func (s *ResumeService) UpsertResume(ctx context.Context, r *resumedb.Resume) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}

	if r.Filename == "" {
		r.Filename = filepath.Base(r.Path)
	}
	r.ContentHash = hashContent(r.Content)
	r.ScannedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, storageError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var prevHash string
	err = tx.QueryRowContext(ctx, "SELECT content_hash FROM resume_meta WHERE path = ?", r.Path).Scan(&prevHash)
	if err != nil && err != sql.ErrNoRows {
		return false, storageError(err, "failed to read resume %s", r.Path)
	}
	changed := err == sql.ErrNoRows || prevHash != r.ContentHash

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO resumes (path, filename, content)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET filename = excluded.filename, content = excluded.content
	`, r.Path, r.Filename, r.Content); err != nil {
		return false, storageError(err, "failed to store resume %s", r.Path)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO resume_meta (path, content_hash, scanned_at)
		VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET content_hash = excluded.content_hash, scanned_at = excluded.scanned_at
	`, r.Path, r.ContentHash, r.ScannedAt.Format(time.RFC3339)); err != nil {
		return false, storageError(err, "failed to store resume metadata %s", r.Path)
	}

	if err := replaceSections(ctx, tx, r.Path, r.Sections); err != nil {
		return false, storageError(err, "failed to store sections %s", r.Path)
	}

	if err := tx.Commit(); err != nil {
		return false, storageError(err, "failed to commit resume %s", r.Path)
	}
	return changed, nil
}

// replaceSections drops the parsed sections stored for path and writes s.
func replaceSections(ctx context.Context, tx *sql.Tx, path string, s *resumedb.Sections) error {
	for _, table := range []string{"resume_sections", "resume_employers", "resume_skills"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE path = ?", path); err != nil {
			return err
		}
	}
	if s == nil {
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO resume_sections (path, header, summary) VALUES (?, ?, ?)",
		path, s.Header, s.Summary); err != nil {
		return err
	}
	for i, e := range s.Employers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO resume_employers (path, position, header, summary, highlights)
			VALUES (?, ?, ?, ?, ?)
		`, path, i, e.Header, e.Summary, strings.Join(e.Highlights, "\n")); err != nil {
			return err
		}
	}
	for i, g := range s.Skills {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO resume_skills (path, position, header, skills)
			VALUES (?, ?, ?, ?)
		`, path, i, g.Header, strings.Join(g.Skills, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// FindResumeByPath retrieves a resume by path, including its parsed sections.
func (s *ResumeService) FindResumeByPath(ctx context.Context, path string) (*resumedb.Resume, error) {
	resumes, err := s.FindResumes(ctx, resumedb.ResumeFilter{Path: &path, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(resumes) == 0 {
		return nil, resumedb.Errorf(resumedb.ENOTFOUND, "resume not found")
	}

	r := resumes[0]
	if r.Sections, err = s.findSections(ctx, path); err != nil {
		return nil, err
	}
	return r, nil
}

// FindResumes retrieves resumes matching the filter, ordered by path.
// Rows written by other tools have no metadata; their hash and scan time
// are left empty.
func (s *ResumeService) FindResumes(ctx context.Context, filter resumedb.ResumeFilter) ([]*resumedb.Resume, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT r.path, r.filename, r.content, COALESCE(m.content_hash, ''), COALESCE(m.scanned_at, '')
		FROM resumes r
		LEFT JOIN resume_meta m ON m.path = r.path
		WHERE 1=1`)

	if filter.Path != nil {
		query.WriteString(" AND r.path = ?")
		args = append(args, *filter.Path)
	}
	if filter.Filename != nil {
		query.WriteString(` AND r.filename LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(*filter.Filename)+"%")
	}

	query.WriteString(" ORDER BY r.path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, storageError(err, "failed to query resumes")
	}
	defer rows.Close()

	var resumes []*resumedb.Resume
	for rows.Next() {
		var r resumedb.Resume
		var scannedAt string

		if err := rows.Scan(&r.Path, &r.Filename, &r.Content, &r.ContentHash, &scannedAt); err != nil {
			return nil, storageError(err, "failed to scan resume row")
		}
		if scannedAt != "" {
			if r.ScannedAt, err = parseRFC3339(scannedAt, "scanned_at"); err != nil {
				return nil, err
			}
		}

		resumes = append(resumes, &r)
	}

	return resumes, rows.Err()
}

func (s *ResumeService) findSections(ctx context.Context, path string) (*resumedb.Sections, error) {
	var sec resumedb.Sections
	err := s.db.QueryRowContext(ctx,
		"SELECT header, summary FROM resume_sections WHERE path = ?", path,
	).Scan(&sec.Header, &sec.Summary)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err, "failed to query sections")
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT header, summary, highlights FROM resume_employers WHERE path = ? ORDER BY position", path)
	if err != nil {
		return nil, storageError(err, "failed to query employers")
	}
	for rows.Next() {
		var e resumedb.Employer
		var highlights string
		if err := rows.Scan(&e.Header, &e.Summary, &highlights); err != nil {
			rows.Close()
			return nil, storageError(err, "failed to scan employer row")
		}
		e.Highlights = splitLines(highlights)
		sec.Employers = append(sec.Employers, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		"SELECT header, skills FROM resume_skills WHERE path = ? ORDER BY position", path)
	if err != nil {
		return nil, storageError(err, "failed to query skills")
	}
	defer rows.Close()
	for rows.Next() {
		var g resumedb.SkillGroup
		var skills string
		if err := rows.Scan(&g.Header, &skills); err != nil {
			return nil, storageError(err, "failed to scan skill row")
		}
		g.Skills = splitLines(skills)
		sec.Skills = append(sec.Skills, g)
	}

	return &sec, rows.Err()
}

// CountResumes returns the number of stored resumes.
func (s *ResumeService) CountResumes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM resumes").Scan(&n); err != nil {
		return 0, storageError(err, "failed to count resumes")
	}
	return n, nil
}

// DeleteResume permanently removes a resume. Metadata and sections go with it.
func (s *ResumeService) DeleteResume(ctx context.Context, path string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM resumes WHERE path = ?", path)
	if err != nil {
		return storageError(err, "failed to delete resume %s", path)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return resumedb.Errorf(resumedb.ENOTFOUND, "resume not found")
	}

	return nil
}
