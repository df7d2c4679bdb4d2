package main

import (
	"fmt"

	"github.com/fwojciec/resumedb"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return reported(resumedb.Errorf(resumedb.EINVALID, "use --force to confirm deletion"))
	}

	r, err := findResume(deps, c.Path)
	if resumedb.ErrorCode(err) == resumedb.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: resume %q not found. Use 'resumedb list' to see stored resumes.\n", c.Path)
		return reported(err)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	if err := deps.Resumes.DeleteResume(deps.Ctx, r.Path); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted resume %q\n", r.Path)
	return nil
}
