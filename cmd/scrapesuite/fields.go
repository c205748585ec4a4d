package main

import (
	"fmt"
	"os"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Run executes the fields command.
func (c *FieldsCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	var fields []scrapesuite.Field
	for _, name := range c.Fields {
		field := scrapesuite.Field(name)
		if !scrapesuite.ValidField(field) {
			return scrapesuite.Errorf(scrapesuite.EINVALID, "unknown field %q", name)
		}
		fields = append(fields, field)
	}

	selections, err := deps.Fields.DetectFields(string(data), c.Item, fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapesuite.ErrorMessage(err))
		return err
	}

	if len(selections) == 0 {
		fmt.Fprintln(deps.Stdout, "No field selectors detected.")
		return nil
	}

	for _, sel := range selections {
		fmt.Fprintf(deps.Stdout, "%-12s %-40s  tier=%-9s strategy=%s\n",
			sel.Field, sel.Selector.String(), sel.Tier, sel.Strategy)
	}

	return nil
}
