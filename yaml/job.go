// Package yaml encodes jobs to and from YAML documents, for exporting
// selector sets into version-controllable config files and loading them
// back.
package yaml

import (
	"time"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	"gopkg.in/yaml.v3"
)

// jobDocument is the on-disk shape of a job. Field selectors are stored as
// plain strings in the "@attr" suffix grammar so the files stay readable
// and hand-editable.
type jobDocument struct {
	ID           string            `yaml:"id,omitempty"`
	Name         string            `yaml:"name"`
	SourceURL    string            `yaml:"source_url,omitempty"`
	ItemSelector string            `yaml:"item_selector"`
	Fields       map[string]string `yaml:"fields,omitempty"`
	CreatedAt    time.Time         `yaml:"created_at,omitempty"`
	UpdatedAt    time.Time         `yaml:"updated_at,omitempty"`
}

// EncodeJob renders a job as a YAML document.
func EncodeJob(job *scrapesuite.Job) ([]byte, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	doc := jobDocument{
		ID:           job.ID,
		Name:         job.Name,
		SourceURL:    job.SourceURL,
		ItemSelector: job.ItemSelector,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
	if len(job.Fields) > 0 {
		doc.Fields = make(map[string]string, len(job.Fields))
		for field, selector := range job.Fields {
			doc.Fields[string(field)] = selector
		}
	}
	return yaml.Marshal(&doc)
}

// DecodeJob parses a YAML document into a validated job. Malformed YAML or
// invalid selectors return an EINVALID error.
func DecodeJob(data []byte) (*scrapesuite.Job, error) {
	var doc jobDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, scrapesuite.Errorf(scrapesuite.EINVALID, "invalid job document: %v", err)
	}

	job := &scrapesuite.Job{
		ID:           doc.ID,
		Name:         doc.Name,
		SourceURL:    doc.SourceURL,
		ItemSelector: doc.ItemSelector,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if len(doc.Fields) > 0 {
		job.Fields = make(map[scrapesuite.Field]string, len(doc.Fields))
		for field, selector := range doc.Fields {
			job.Fields[scrapesuite.Field(field)] = selector
		}
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}
