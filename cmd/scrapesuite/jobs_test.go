package main_test

import (
	"bytes"
	"context"
	"testing"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
	main "github.com/russellbomer/scrapesuite-sub001/cmd/scrapesuite"
	"github.com/russellbomer/scrapesuite-sub001/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists jobs with ID, name, and selector", func(t *testing.T) {
		t.Parallel()

		jobs := &mock.JobService{
			FindJobsFn: func(_ context.Context, _ scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
				return []*scrapesuite.Job{
					{
						ID:           "job-123",
						Name:         "front-page",
						ItemSelector: ".athing",
						Fields: map[scrapesuite.Field]string{
							scrapesuite.FieldTitle: ".titleline a",
						},
					},
					{
						ID:           "job-456",
						Name:         "jobs-board",
						ItemSelector: "#jobs tbody tr",
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Jobs:   jobs,
		}

		cmd := &main.JobsCmd{}
		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "job-123")
		assert.Contains(t, output, "front-page")
		assert.Contains(t, output, ".athing")
		assert.Contains(t, output, "job-456")
		assert.Contains(t, output, "#jobs tbody tr")
	})

	t.Run("shows helpful message when no jobs exist", func(t *testing.T) {
		t.Parallel()

		jobs := &mock.JobService{
			FindJobsFn: func(_ context.Context, _ scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Jobs:   jobs,
		}

		err := (&main.JobsCmd{}).Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No jobs found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports missing job on stderr", func(t *testing.T) {
		t.Parallel()

		jobs := &mock.JobService{
			FindJobByIDFn: func(_ context.Context, id string) (*scrapesuite.Job, error) {
				return nil, scrapesuite.Errorf(scrapesuite.ENOTFOUND, "job not found")
			},
			FindJobsFn: func(_ context.Context, _ scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Jobs:   jobs,
		}

		err := (&main.DeleteCmd{Job: "nope"}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, scrapesuite.ENOTFOUND, scrapesuite.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("deletes by ID", func(t *testing.T) {
		t.Parallel()

		var deleted string
		jobs := &mock.JobService{
			FindJobByIDFn: func(_ context.Context, id string) (*scrapesuite.Job, error) {
				return &scrapesuite.Job{ID: id, Name: "front-page", ItemSelector: ".athing"}, nil
			},
			DeleteJobFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Jobs:   jobs,
		}

		err := (&main.DeleteCmd{Job: "job-123"}).Run(deps)
		require.NoError(t, err)
		assert.Equal(t, "job-123", deleted)
		assert.Contains(t, stdout.String(), "Deleted job front-page")
	})

	t.Run("resolves a job name when the ID lookup misses", func(t *testing.T) {
		t.Parallel()

		var deleted string
		jobs := &mock.JobService{
			FindJobByIDFn: func(_ context.Context, id string) (*scrapesuite.Job, error) {
				return nil, scrapesuite.Errorf(scrapesuite.ENOTFOUND, "no such id")
			},
			FindJobsFn: func(_ context.Context, filter scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
				if filter.Name != nil && *filter.Name == "front-page" {
					return []*scrapesuite.Job{{ID: "job-123", Name: "front-page", ItemSelector: ".athing"}}, nil
				}
				return nil, nil
			},
			DeleteJobFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Jobs:   jobs,
		}

		err := (&main.DeleteCmd{Job: "front-page"}).Run(deps)
		require.NoError(t, err)
		assert.Equal(t, "job-123", deleted)
	})
}
