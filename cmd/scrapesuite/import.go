package main

import (
	"fmt"
	"os"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	suiteyaml "github.com/russellbomer/scrapesuite-sub001/yaml"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	job, err := suiteyaml.DecodeJob(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	// Imported jobs always get a fresh identity.
	job.ID = ""
	if err := deps.Jobs.CreateJob(deps.Ctx, job); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported job %s (%s)\n", job.Name, job.ID)
	return nil
}
