package main

import (
	"fmt"

	"github.com/fwojciec/resumedb"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	resumes, err := deps.Resumes.FindResumes(deps.Ctx, filenameFilter(c.Filter))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	for _, r := range resumes {
		if err := deps.Exports.Save(deps.Ctx, r); err != nil {
			_ = deps.Exports.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %v\n", r.Path, err)
			return reported(err)
		}
	}

	if err := deps.Exports.Commit(); err != nil {
		_ = deps.Exports.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d resumes\n", len(resumes))
	return nil
}
