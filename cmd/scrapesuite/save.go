package main

import (
	"fmt"
	"os"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	fields := make(map[scrapesuite.Field]string, len(c.Field))
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.File, err)
		}
		selections, err := deps.Fields.DetectFields(string(data), c.Item, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
			return err
		}
		for _, sel := range selections {
			fields[sel.Field] = sel.Selector.String()
		}
	}
	for name, text := range c.Field {
		fields[scrapesuite.Field(name)] = text
	}

	job := &scrapesuite.Job{
		Name:         c.Name,
		SourceURL:    c.SourceURL,
		ItemSelector: c.Item,
		Fields:       fields,
	}

	if err := deps.Jobs.CreateJob(deps.Ctx, job); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved job %s (%s)\n", job.Name, job.ID)
	return nil
}
