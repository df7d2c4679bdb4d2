package main

import (
	"fmt"

	"github.com/fwojciec/resumedb"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := filenameFilter(c.Filter)
	filter.Limit = c.Limit

	resumes, err := deps.Resumes.FindResumes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	if len(resumes) == 0 {
		fmt.Fprintln(deps.Stdout, "No resumes found. Use 'resumedb scan <dir>' to add some.")
		return nil
	}

	if c.Full {
		// Same text that ask sends to the model.
		fmt.Fprintln(deps.Stdout, resumedb.FormatResumes(resumes))
		return nil
	}

	total, err := deps.Resumes.CountResumes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Resumes (%d of %d):\n\n", len(resumes), total)
	for _, r := range resumes {
		scanned := "-"
		if !r.ScannedAt.IsZero() {
			scanned = r.ScannedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(deps.Stdout, "  %s  %8s  %s\n", scanned, FormatBytes(len(r.Content)), r.Path)
	}

	return nil
}
