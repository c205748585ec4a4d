package main

import (
	"fmt"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	job, err := findJob(deps, c.Job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	if err := deps.Jobs.DeleteJob(deps.Ctx, job.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted job %s (%s)\n", job.Name, job.ID)
	return nil
}
