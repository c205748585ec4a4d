package main

import (
	"fmt"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Jobs.FindJobs(deps.Ctx, scrapesuite.JobFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'scrapesuite save' to create one.")
		return nil
	}

	for _, job := range jobs {
		fmt.Fprintf(deps.Stdout, "%s  %-20s  %-30s  %d field(s)\n",
			job.ID, job.Name, job.ItemSelector, len(job.Fields))
	}

	return nil
}
