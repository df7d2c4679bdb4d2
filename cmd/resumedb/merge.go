package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/resumedb"
	"github.com/fwojciec/resumedb/docx"
)

// Run executes the merge command.
func (c *MergeCmd) Run(deps *Dependencies) error {
	out := filepath.Clean(c.Out)
	if out == filepath.Clean(c.First) || out == filepath.Clean(c.Second) {
		fmt.Fprintln(deps.Stderr, "error: output must differ from both inputs")
		return reported(resumedb.Errorf(resumedb.EINVALID, "output must differ from both inputs"))
	}
	if !c.Force {
		if _, err := os.Stat(out); err == nil {
			fmt.Fprintf(deps.Stderr, "error: %s exists; use --force to overwrite\n", out)
			return reported(resumedb.Errorf(resumedb.EINVALID, "output %s exists", out))
		}
	}

	if err := docx.Merge(c.First, c.Second, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resumedb.ErrorMessage(err))
		return reported(err)
	}

	fmt.Fprintf(deps.Stdout, "Merged %s and %s into %s\n", c.First, c.Second, out)
	return nil
}
