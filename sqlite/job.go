package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	scrapesuite "github.com/russellbomer/scrapesuite-sub001"
)

// Compile-time interface verification.
var _ scrapesuite.JobService = (*JobService)(nil)

// JobService implements scrapesuite.JobService using SQLite.
type JobService struct {
	db *DB
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db}
}

// CreateJob creates a new job.
func (s *JobService) CreateJob(ctx context.Context, job *scrapesuite.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.ID = uuid.New().String()
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO jobs (id, name, source_url, item_selector, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, job.ID, job.Name, job.SourceURL, job.ItemSelector,
		job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	if err := insertFields(ctx, tx, job.ID, job.Fields); err != nil {
		return err
	}

	return tx.Commit()
}

// FindJobByID retrieves a job by ID.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*scrapesuite.Job, error) {
	var job scrapesuite.Job
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_url, item_selector, created_at, updated_at
		FROM jobs
		WHERE id = ?
	`, id).Scan(&job.ID, &job.Name, &job.SourceURL, &job.ItemSelector, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, scrapesuite.Errorf(scrapesuite.ENOTFOUND, "job not found")
	}
	if err != nil {
		return nil, err
	}

	if job.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if job.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	if job.Fields, err = s.findFields(ctx, job.ID); err != nil {
		return nil, err
	}

	return &job, nil
}

// FindJobs retrieves jobs matching the filter.
func (s *JobService) FindJobs(ctx context.Context, filter scrapesuite.JobFilter) ([]*scrapesuite.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, item_selector, created_at, updated_at FROM jobs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*scrapesuite.Job
	for rows.Next() {
		var job scrapesuite.Job
		var createdAt, updatedAt string

		if err := rows.Scan(&job.ID, &job.Name, &job.SourceURL, &job.ItemSelector, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if job.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if job.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, job := range jobs {
		if job.Fields, err = s.findFields(ctx, job.ID); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

// UpdateJob updates an existing job.
func (s *JobService) UpdateJob(ctx context.Context, id string, upd scrapesuite.JobUpdate) (*scrapesuite.Job, error) {
	job, err := s.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		job.Name = *upd.Name
	}
	if upd.SourceURL != nil {
		job.SourceURL = *upd.SourceURL
	}
	if upd.ItemSelector != nil {
		job.ItemSelector = *upd.ItemSelector
	}
	if upd.Fields != nil {
		job.Fields = upd.Fields
	}

	// Validate before persisting
	if err := job.Validate(); err != nil {
		return nil, err
	}

	job.UpdatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE jobs
		SET name = ?, source_url = ?, item_selector = ?, updated_at = ?
		WHERE id = ?
	`, job.Name, job.SourceURL, job.ItemSelector, job.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	if upd.Fields != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM job_fields WHERE job_id = ?", id); err != nil {
			return nil, err
		}
		if err := insertFields(ctx, tx, id, job.Fields); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob permanently removes a job.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return scrapesuite.Errorf(scrapesuite.ENOTFOUND, "job not found")
	}

	return nil
}

// findFields loads a job's field selectors.
func (s *JobService) findFields(ctx context.Context, jobID string) (map[scrapesuite.Field]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT field, selector FROM job_fields WHERE job_id = ?", jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := make(map[scrapesuite.Field]string)
	for rows.Next() {
		var field, selector string
		if err := rows.Scan(&field, &selector); err != nil {
			return nil, err
		}
		fields[scrapesuite.Field(field)] = selector
	}
	return fields, rows.Err()
}

// insertFields writes a job's field selectors inside an open transaction.
func insertFields(ctx context.Context, tx *sql.Tx, jobID string, fields map[scrapesuite.Field]string) error {
	for field, selector := range fields {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO job_fields (job_id, field, selector)
			VALUES (?, ?, ?)
		`, jobID, string(field), selector); err != nil {
			return fmt.Errorf("failed to insert field %s: %w", field, err)
		}
	}
	return nil
}

// parseRFC3339 parses a stored timestamp column, naming the column in the
// error when the row is corrupt.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination adds LIMIT/OFFSET clauses for positive filter values.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
