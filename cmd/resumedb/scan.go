package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStored:
			if event.Changed {
				fmt.Fprintf(deps.Stdout, "stored %s\n", event.Path)
			} else {
				fmt.Fprintf(deps.Stdout, "unchanged %s\n", event.Path)
			}
		case scan.ProgressIgnored:
			fmt.Fprintf(deps.Stdout, "ignored %s\n", event.Path)
		case scan.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "skip %s\n", event.Path)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "fail %s [%s]: %s\n",
				event.Path, resumedb.ErrorCode(event.Error), resumedb.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Scanner.Scan(deps.Ctx, c.Root, progress)
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Processed %d, stored %d (%d unchanged), skipped %d, ignored %d, failed %d\n",
			result.Processed, result.Stored, result.Unchanged, result.Skipped, result.Ignored, result.Failed)
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(deps.Stderr, "interrupted")
		return reported(err)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", result.Failed, result.Processed)
	}
	return nil
}
