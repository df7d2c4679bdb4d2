// Package scan walks a directory tree and stores the text of every resume
// document it finds.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/resumedb"
)

// Scanner ties the walker, the dispatcher and the store together.
// Scans and Ignore are optional.
type Scanner struct {
	Walker     resumedb.Walker
	Dispatcher resumedb.Extractor
	Resumes    resumedb.ResumeService
	Scans      resumedb.ScanService
	Ignore     *resumedb.IgnoreRules
}

// Result holds the outcome of a scan.
// Processed counts every walked entry, so it equals
// Stored + Skipped + Ignored + Failed.
type Result struct {
	resumedb.Counts

	// Unchanged is the number of stored files whose content matched
	// what was already in the database.
	Unchanged int

	Errors []FileError
}

// FileError is a failure tied to one path.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e FileError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e FileError) Unwrap() error {
	return e.Err
}

// ProgressEvent reports the outcome of one file.
type ProgressEvent struct {
	Type    ProgressType
	Path    string
	Changed bool
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStored ProgressType = iota
	ProgressSkipped
	ProgressIgnored
	ProgressFailed
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// Scan processes every file under root. A failing file is reported and
// counted, and the scan moves on. Only an invalid root, a failure to record
// the scan, or cancellation of ctx end it early; on cancellation the counts
// gathered so far are still returned along with ctx.Err().
func (s *Scanner) Scan(ctx context.Context, root string, progress ProgressFunc) (*Result, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, resumedb.WrapError(resumedb.EINVALID, err, "invalid root %q", root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, resumedb.WrapError(resumedb.EINVALID, err, "cannot read root %q", root)
	}
	if !info.IsDir() {
		return nil, resumedb.Errorf(resumedb.EINVALID, "root %q is not a directory", root)
	}

	var scan *resumedb.Scan
	if s.Scans != nil {
		scan = &resumedb.Scan{Root: root}
		if err := s.Scans.CreateScan(ctx, scan); err != nil {
			return nil, err
		}
	}

	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	result := &Result{}
	fail := func(path string, err error) {
		result.Failed++
		result.Errors = append(result.Errors, FileError{Path: path, Err: err})
		progress(ProgressEvent{Type: ProgressFailed, Path: path, Error: err})
	}

	for path, walkErr := range s.Walker.Walk(root) {
		if ctx.Err() != nil {
			break
		}
		result.Processed++

		if walkErr != nil {
			fail(path, walkErr)
			continue
		}

		path = filepath.Clean(path)
		if s.Ignore != nil && s.Ignore.Match(path) {
			result.Ignored++
			progress(ProgressEvent{Type: ProgressIgnored, Path: path})
			continue
		}

		content, err := s.Dispatcher.Extract(ctx, path)
		if resumedb.ErrorCode(err) == resumedb.EUNSUPPORTED {
			result.Skipped++
			progress(ProgressEvent{Type: ProgressSkipped, Path: path, Error: err})
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				// Interrupted mid-file; the file was not processed.
				result.Processed--
				break
			}
			fail(path, err)
			continue
		}

		content = strings.TrimSpace(content)
		changed, err := s.Resumes.UpsertResume(ctx, &resumedb.Resume{
			Path:     path,
			Filename: filepath.Base(path),
			Content:  content,
			Sections: resumedb.ParseSections(content),
		})
		if err != nil {
			fail(path, err)
			continue
		}

		result.Stored++
		if !changed {
			result.Unchanged++
		}
		progress(ProgressEvent{Type: ProgressStored, Path: path, Changed: changed})
	}

	if scan != nil {
		if err := s.Scans.FinishScan(context.WithoutCancel(ctx), scan.ID, result.Counts); err != nil {
			return result, err
		}
	}

	return result, ctx.Err()
}
