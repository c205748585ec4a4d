package main

import (
	"fmt"
	"os"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	item := c.Item
	fields := make(map[scrapesuite.Field]scrapesuite.Selector)

	if c.Job != "" {
		job, err := findJob(deps, c.Job)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
			return err
		}
		item = job.ItemSelector
		if fields, err = job.FieldSelectors(); err != nil {
			return err
		}
	}
	if item == "" {
		return scrapesuite.Errorf(scrapesuite.EINVALID, "an item selector (--item) or a job (--job) is required")
	}

	parsed, err := parseFieldSelectors(c.Field)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}
	for field, sel := range parsed {
		fields[field] = sel
	}

	records, err := deps.Extractor.Extract(string(data), item, fields, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records extracted.")
		return nil
	}

	for _, record := range records {
		fmt.Fprintf(deps.Stdout, "[%d]\n", record.Index)
		for _, field := range scrapesuite.AllFields() {
			if value, ok := record.Value(field); ok {
				fmt.Fprintf(deps.Stdout, "  %-12s %s\n", field, value)
			}
		}
	}
	fmt.Fprintf(deps.Stdout, "%d record(s)\n", len(records))

	return nil
}

// parseFieldSelectors converts field=selector flag pairs into parsed
// selectors, rejecting unknown fields and malformed selectors.
func parseFieldSelectors(pairs map[string]string) (map[scrapesuite.Field]scrapesuite.Selector, error) {
	fields := make(map[scrapesuite.Field]scrapesuite.Selector, len(pairs))
	for name, text := range pairs {
		field := scrapesuite.Field(name)
		if !scrapesuite.ValidField(field) {
			return nil, scrapesuite.Errorf(scrapesuite.EINVALID, "unknown field %q", name)
		}
		sel, err := scrapesuite.ParseSelector(text)
		if err != nil {
			return nil, err
		}
		fields[field] = sel
	}
	return fields, nil
}
