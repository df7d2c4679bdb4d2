package main

import (
	"fmt"

	"github.com/fwojciec/resumedb"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, filenameFilter(c.Filter), c.Question)
	if resumedb.ErrorCode(err) == resumedb.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "error: no matching resumes. Use 'resumedb list' to see stored resumes.")
		return reported(err)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
