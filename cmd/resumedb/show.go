package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/resumedb"
)

// findResume looks up path as given, then as an absolute path.
func findResume(deps *Dependencies, path string) (*resumedb.Resume, error) {
	r, err := deps.Resumes.FindResumeByPath(deps.Ctx, path)
	if resumedb.ErrorCode(err) != resumedb.ENOTFOUND {
		return r, err
	}
	abs, absErr := filepath.Abs(path)
	if absErr != nil || abs == path {
		return nil, err
	}
	return deps.Resumes.FindResumeByPath(deps.Ctx, abs)
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	r, err := findResume(deps, c.Path)
	if resumedb.ErrorCode(err) == resumedb.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: resume %q not found. Use 'resumedb list' to see stored resumes.\n", c.Path)
		return reported(err)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	w := deps.Stdout
	fmt.Fprintf(w, "Path:     %s\n", r.Path)
	fmt.Fprintf(w, "Filename: %s\n", r.Filename)
	fmt.Fprintf(w, "Size:     %s\n", FormatBytes(len(r.Content)))
	if !r.ScannedAt.IsZero() {
		fmt.Fprintf(w, "Scanned:  %s\n", r.ScannedAt.Local().Format("2006-01-02 15:04"))
	}
	if r.ContentHash != "" {
		fmt.Fprintf(w, "Hash:     %s\n", r.ContentHash)
	}

	if s := r.Sections; s != nil {
		if len(s.Employers) > 0 {
			fmt.Fprintln(w, "Employers:")
			for _, e := range s.Employers {
				fmt.Fprintf(w, "  - %s\n", e.Header)
			}
		}
		if len(s.Skills) > 0 {
			fmt.Fprintln(w, "Skills:")
			for _, g := range s.Skills {
				fmt.Fprintf(w, "  - %s: %s\n", g.Header, strings.Join(g.Skills, "; "))
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", r.Content)
	return nil
}
