package main

import (
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// findJob resolves a job reference: first as an ID, then as a unique name.
func findJob(deps *Dependencies, ref string) (*scrapesuite.Job, error) {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, ref)
	if err == nil {
		return job, nil
	}
	if scrapesuite.ErrorCode(err) != scrapesuite.ENOTFOUND {
		return nil, err
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, scrapesuite.JobFilter{Name: &ref})
	if err != nil {
		return nil, err
	}
	switch len(jobs) {
	case 0:
		return nil, scrapesuite.Errorf(scrapesuite.ENOTFOUND, "job %q not found", ref)
	case 1:
		return jobs[0], nil
	}
	return nil, scrapesuite.Errorf(scrapesuite.ECONFLICT, "job name %q is ambiguous, use the ID", ref)
}
