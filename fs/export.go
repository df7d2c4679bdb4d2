package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/resumedb"
)

// Ensure ExportStore implements resumedb.ExportStore at compile time.
var _ resumedb.ExportStore = (*ExportStore)(nil)

// ResumePath converts a resume's source path to a relative export path.
// Example: /home/jane/cv/resume.docx → home/jane/cv/resume.docx.txt
func ResumePath(path string) string {
	path = strings.TrimPrefix(path, filepath.VolumeName(path))
	rel := strings.TrimPrefix(filepath.Join(string(filepath.Separator), path), string(filepath.Separator))
	if rel == "" {
		return "index.txt"
	}
	return rel + ".txt"
}

// FormatResume formats a resume as text with YAML frontmatter.
func FormatResume(r *resumedb.Resume) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("path: ")
	b.WriteString(r.Path)
	b.WriteString("\nfilename: ")
	b.WriteString(r.Filename)
	b.WriteString("\nscanned: ")
	b.WriteString(r.ScannedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(r.Content)
	return b.String()
}

// ExportStore writes resumes as text files with atomic update semantics.
// Files are saved to a temporary directory, then moved into place on Commit.
type ExportStore struct {
	baseDir string
	name    string
}

// NewExportStore creates a new ExportStore.
// Files are saved to baseDir/.name.tmp and moved to baseDir/name on Commit.
// Returns EINVALID unless name is a single plain path element.
func NewExportStore(baseDir, name string) (*ExportStore, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
	}, nil
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "", name == ".", name == "..":
		return resumedb.Errorf(resumedb.EINVALID, "invalid export name %q", name)
	case strings.ContainsAny(name, `/\`), filepath.Base(name) != name:
		return resumedb.Errorf(resumedb.EINVALID, "export name %q must not contain a path separator", name)
	}
	return nil
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, "."+s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one resume into the temporary directory.
func (s *ExportStore) Save(ctx context.Context, r *resumedb.Resume) error {
	if err := r.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), ResumePath(r.Path))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatResume(r)), 0644)
}

// Commit replaces the final directory with the saved files.
// Committing without any saved resumes leaves an empty directory.
func (s *ExportStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved so far.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
