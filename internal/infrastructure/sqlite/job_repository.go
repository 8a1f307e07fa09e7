package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
)

type jobRepository struct {
	db *DB
}

func NewJobRepository(db *DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job, tagNames []string) error {
	return r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO job (employer_id, title, salary, location, schedule, url, featured, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			job.EmployerID,
			job.Title,
			job.Salary,
			job.Location,
			string(job.Schedule),
			job.URL,
			job.Featured,
			job.CreatedAt,
			job.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get job id: %w", err)
		}
		job.ID = id

		return attachTags(ctx, tx, job.ID, tagNames)
	})
}

func (r *jobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, employer_id, title, salary, location, schedule, url, featured, created_at, updated_at
		FROM job
		WHERE id = ?
	`
	var job domain.Job
	err := r.db.GetContext(ctx, &job, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if err := r.loadRelations(ctx, []*domain.Job{&job}); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job, replaceTags bool, tagNames []string) error {
	return r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE job
			SET title = ?, salary = ?, location = ?, schedule = ?, url = ?, featured = ?, updated_at = ?
			WHERE id = ?
		`,
			job.Title,
			job.Salary,
			job.Location,
			string(job.Schedule),
			job.URL,
			job.Featured,
			job.UpdatedAt,
			job.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update job: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return repository.ErrNotFound
		}

		if !replaceTags {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM job_tag WHERE job_id = ?`, job.ID); err != nil {
			return fmt.Errorf("failed to detach tags: %w", err)
		}
		return attachTags(ctx, tx, job.ID, tagNames)
	})
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	// job_tag rows go with the job via ON DELETE CASCADE; tag rows stay.
	result, err := r.db.ExecContext(ctx, `DELETE FROM job WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context, filter repository.JobFilter) ([]*domain.Job, error) {
	query := `
		SELECT id, employer_id, title, salary, location, schedule, url, featured, created_at, updated_at
		FROM job
	`
	where, args := buildJobWhere(filter)
	query += where + ` ORDER BY created_at DESC, id DESC`

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.PerPage, (page-1)*filter.PerPage)
	}

	var jobs []*domain.Job
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	if err := r.loadRelations(ctx, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Count(ctx context.Context, filter repository.JobFilter) (int, error) {
	query := `SELECT COUNT(*) FROM job`
	where, args := buildJobWhere(filter)
	query += where

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

func buildJobWhere(filter repository.JobFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Search != nil && *filter.Search != "" {
		like := "%" + strings.ToLower(*filter.Search) + "%"
		conditions = append(conditions, `(LOWER(title) LIKE ? OR LOWER(salary) LIKE ? OR LOWER(location) LIKE ?)`)
		args = append(args, like, like, like)
	}

	if filter.TagID != nil {
		conditions = append(conditions, `id IN (SELECT job_id FROM job_tag WHERE tag_id = ?)`)
		args = append(args, *filter.TagID)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// attachTags resolves-or-creates each tag name and links it to the
// job. INSERT OR IGNORE keeps attachment idempotent.
func attachTags(ctx context.Context, tx *sqlx.Tx, jobID int64, tagNames []string) error {
	for _, name := range tagNames {
		name = domain.NormalizeTagName(name)
		if name == "" {
			continue
		}

		var tagID int64
		err := tx.GetContext(ctx, &tagID, `SELECT id FROM tag WHERE name = ?`, name)
		if errors.Is(err, sql.ErrNoRows) {
			result, insertErr := tx.ExecContext(ctx, `INSERT INTO tag (name, created_at) VALUES (?, ?)`, name, time.Now())
			if insertErr != nil {
				return fmt.Errorf("failed to create tag %q: %w", name, insertErr)
			}
			tagID, insertErr = result.LastInsertId()
			if insertErr != nil {
				return fmt.Errorf("failed to get tag id: %w", insertErr)
			}
		} else if err != nil {
			return fmt.Errorf("failed to find tag %q: %w", name, err)
		}

		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO job_tag (job_id, tag_id) VALUES (?, ?)`, jobID, tagID); err != nil {
			return fmt.Errorf("failed to attach tag %q: %w", name, err)
		}
	}
	return nil
}

// loadRelations populates Employer and Tags for each job with one
// query per relation instead of one per job.
func (r *jobRepository) loadRelations(ctx context.Context, jobs []*domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	employerIDs := make([]int64, 0, len(jobs))
	jobIDs := make([]int64, 0, len(jobs))
	seenEmployer := map[int64]bool{}
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
		if !seenEmployer[job.EmployerID] {
			seenEmployer[job.EmployerID] = true
			employerIDs = append(employerIDs, job.EmployerID)
		}
	}

	query, args, err := sqlx.In(`
		SELECT id, user_id, name, logo, created_at, updated_at
		FROM employer
		WHERE id IN (?)
	`, employerIDs)
	if err != nil {
		return fmt.Errorf("failed to build employer query: %w", err)
	}

	var employers []*domain.Employer
	if err := r.db.SelectContext(ctx, &employers, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to load employers: %w", err)
	}

	employersByID := make(map[int64]*domain.Employer, len(employers))
	for _, employer := range employers {
		employersByID[employer.ID] = employer
	}

	query, args, err = sqlx.In(`
		SELECT jt.job_id, t.id, t.name, t.created_at
		FROM job_tag jt
		JOIN tag t ON t.id = jt.tag_id
		WHERE jt.job_id IN (?)
		ORDER BY t.name
	`, jobIDs)
	if err != nil {
		return fmt.Errorf("failed to build tag query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}
	defer rows.Close()

	tagsByJob := make(map[int64][]*domain.Tag)
	for rows.Next() {
		var jobID int64
		var tag domain.Tag
		if err := rows.Scan(&jobID, &tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan tag row: %w", err)
		}
		tagsByJob[jobID] = append(tagsByJob[jobID], &tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read tag rows: %w", err)
	}

	for _, job := range jobs {
		job.Employer = employersByID[job.EmployerID]
		job.Tags = tagsByJob[job.ID]
	}
	return nil
}
