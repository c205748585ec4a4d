package mock

import (
	"context"

	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

var _ scrapesuite.JobService = (*JobService)(nil)

// JobService is a mock implementation of scrapesuite.JobService.
type JobService struct {
	CreateJobFn   func(ctx context.Context, job *scrapesuite.Job) error
	FindJobByIDFn func(ctx context.Context, id string) (*scrapesuite.Job, error)
	FindJobsFn    func(ctx context.Context, filter scrapesuite.JobFilter) ([]*scrapesuite.Job, error)
	UpdateJobFn   func(ctx context.Context, id string, upd scrapesuite.JobUpdate) (*scrapesuite.Job, error)
	DeleteJobFn   func(ctx context.Context, id string) error
}

func (s *JobService) CreateJob(ctx context.Context, job *scrapesuite.Job) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*scrapesuite.Job, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) UpdateJob(ctx context.Context, id string, upd scrapesuite.JobUpdate) (*scrapesuite.Job, error) {
	return s.UpdateJobFn(ctx, id, upd)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	return s.DeleteJobFn(ctx, id)
}
