package main

import (
	"fmt"

	"github.com/fwojciec/resumedb"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	scans, err := deps.Scans.FindScans(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	if len(scans) == 0 {
		fmt.Fprintln(deps.Stdout, "No scans recorded.")
		return nil
	}

	for _, s := range scans {
		status := "unfinished"
		if !s.FinishedAt.IsZero() {
			status = fmt.Sprintf("processed %d, stored %d, skipped %d, ignored %d, failed %d",
				s.Counts.Processed, s.Counts.Stored, s.Counts.Skipped, s.Counts.Ignored, s.Counts.Failed)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04"), s.Root, status)
	}

	return nil
}
