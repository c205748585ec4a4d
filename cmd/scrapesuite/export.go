package main

import (
	"fmt"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	suiteyaml "github.com/russellbomer/scrapesuite-sub001/yaml"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	job, err := findJob(deps, c.Job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	data, err := suiteyaml.EncodeJob(job)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s", data)
	return nil
}
