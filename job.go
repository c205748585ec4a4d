package scrapesuite

import (
	"context"
	"time"
)

// Job is a named, persistable selector set: the item selector plus per-field
// selectors chosen for one source page. Jobs are what the engine hands to
// configuration storage and what the production runtime loads back.
type Job struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SourceURL string    `json:"sourceUrl"`

	// ItemSelector matches the repeating item containers.
	ItemSelector string `json:"itemSelector"`

	// Fields maps a semantic field to its selector string in the "@attr"
	// suffix grammar.
	Fields map[Field]string `json:"fields"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the job contains invalid fields. Selector
// strings are parsed so that a malformed selector is rejected at the
// boundary rather than at extraction time.
func (j *Job) Validate() error {
	if j.Name == "" {
		return Errorf(EINVALID, "job name required")
	}
	if j.ItemSelector == "" {
		return Errorf(EINVALID, "job item selector required")
	}
	if _, err := ParseSelector(j.ItemSelector); err != nil {
		return err
	}
	for field, text := range j.Fields {
		if !ValidField(field) {
			return Errorf(EINVALID, "unknown field %q", field)
		}
		if _, err := ParseSelector(text); err != nil {
			return err
		}
	}
	return nil
}

// FieldSelectors parses the job's field selector strings into Selector
// values, ready for an Extractor.
func (j *Job) FieldSelectors() (map[Field]Selector, error) {
	selectors := make(map[Field]Selector, len(j.Fields))
	for field, text := range j.Fields {
		sel, err := ParseSelector(text)
		if err != nil {
			return nil, err
		}
		selectors[field] = sel
	}
	return selectors, nil
}

// JobService represents a service for managing stored jobs.
type JobService interface {
	// CreateJob creates a new job.
	CreateJob(ctx context.Context, job *Job) error

	// FindJobByID retrieves a job by ID.
	// Returns ENOTFOUND if job does not exist.
	FindJobByID(ctx context.Context, id string) (*Job, error)

	// FindJobs retrieves jobs matching the filter.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// UpdateJob updates an existing job.
	// Returns ENOTFOUND if job does not exist.
	UpdateJob(ctx context.Context, id string, upd JobUpdate) (*Job, error)

	// DeleteJob permanently removes a job.
	// Returns ENOTFOUND if job does not exist.
	DeleteJob(ctx context.Context, id string) error
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// JobUpdate represents fields that can be updated on a job.
type JobUpdate struct {
	Name         *string          `json:"name"`
	SourceURL    *string          `json:"sourceUrl"`
	ItemSelector *string          `json:"itemSelector"`
	Fields       map[Field]string `json:"fields"`
}
