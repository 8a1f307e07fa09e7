package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
)

const (
	MinTitleLength = 3
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// JobInput is a full job payload for creation.
type JobInput struct {
	Title    string
	Salary   string
	Location string
	Schedule string
	URL      string
	Featured bool
	Tags     string // comma-separated, optional
}

// JobPatch updates only the fields that are present.
type JobPatch struct {
	Title    *string
	Salary   *string
	Location *string
	Schedule *string
	URL      *string
	Featured *bool
	Tags     *string
}

type JobService struct {
	jobRepo      repository.JobRepository
	employerRepo repository.EmployerRepository
	tagRepo      repository.TagRepository
}

func NewJobService(
	jobRepo repository.JobRepository,
	employerRepo repository.EmployerRepository,
	tagRepo repository.TagRepository,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		tagRepo:      tagRepo,
	}
}

// Create validates the input and stores a job under the acting user's
// employer. Tag attachment happens in the same transaction as the
// insert, with duplicate names collapsing to one association.
func (s *JobService) Create(ctx context.Context, userID int64, input JobInput) (*domain.Job, error) {
	if err := validateJobInput(input); err != nil {
		return nil, err
	}

	employer, err := s.employerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employer: %w", err)
	}

	job := domain.NewJob(
		employer.ID,
		input.Title,
		input.Salary,
		input.Location,
		domain.Schedule(input.Schedule),
		input.URL,
		input.Featured,
	)

	if err := s.jobRepo.Create(ctx, job, domain.SplitTagNames(input.Tags)); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	job.Employer = employer
	job.Tags, err = s.tagRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewNotFoundError(fmt.Sprintf("job not found: %d", id))
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetOwned fetches a job and confirms the acting user owns its
// employer. Update, edit and destroy all authorize through here.
func (s *JobService) GetOwned(ctx context.Context, userID, jobID int64) (*domain.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	employer, err := s.employerRepo.FindByUserID(ctx, userID)
	if err != nil || employer.ID != job.EmployerID {
		return nil, NewForbiddenError("you do not own this job")
	}
	return job, nil
}

// Update applies the present patch fields after per-field validation.
// A tags value replaces the association set wholesale.
func (s *JobService) Update(ctx context.Context, userID, jobID int64, patch JobPatch) (*domain.Job, error) {
	job, err := s.GetOwned(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Salary != nil {
		job.Salary = *patch.Salary
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Schedule != nil {
		job.Schedule = domain.Schedule(*patch.Schedule)
	}
	if patch.URL != nil {
		job.URL = *patch.URL
	}
	if patch.Featured != nil {
		job.Featured = *patch.Featured
	}

	if err := validateJobInput(JobInput{
		Title:    job.Title,
		Salary:   job.Salary,
		Location: job.Location,
		Schedule: string(job.Schedule),
		URL:      job.URL,
	}); err != nil {
		return nil, err
	}

	job.UpdatedAt = time.Now()

	var tagNames []string
	if patch.Tags != nil {
		tagNames = domain.SplitTagNames(*patch.Tags)
	}

	if err := s.jobRepo.Update(ctx, job, patch.Tags != nil, tagNames); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	job.Tags, err = s.tagRepo.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, userID, jobID int64) error {
	if _, err := s.GetOwned(ctx, userID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// List returns jobs newest first with relations loaded, plus the
// total count for pagination.
func (s *JobService) List(ctx context.Context, page, perPage int) ([]*domain.Job, int, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page < 1 {
		page = 1
	}

	filter := repository.JobFilter{Page: page, PerPage: perPage}
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.jobRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return jobs, count, nil
}

// Search matches the query case-insensitively against title, salary
// and location.
func (s *JobService) Search(ctx context.Context, query string) ([]*domain.Job, error) {
	return s.jobRepo.List(ctx, repository.JobFilter{Search: &query})
}

// ListByTag returns the jobs carrying the named tag; unknown tags are
// a not-found error.
func (s *JobService) ListByTag(ctx context.Context, name string) (*domain.Tag, []*domain.Job, error) {
	tag, err := s.tagRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, NewNotFoundError(fmt.Sprintf("tag not found: %s", name))
	}
	if err != nil {
		return nil, nil, err
	}

	jobs, err := s.jobRepo.List(ctx, repository.JobFilter{TagID: &tag.ID})
	if err != nil {
		return nil, nil, err
	}
	return tag, jobs, nil
}

func (s *JobService) Tags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tagRepo.List(ctx)
}

// validateJobInput evaluates the job constraint table. Nothing is
// written when it fails.
func validateJobInput(input JobInput) error {
	fields := map[string]string{}

	if len(input.Title) < MinTitleLength {
		fields["title"] = "The title must be at least 3 characters."
	}
	if input.Salary == "" {
		fields["salary"] = "The salary field is required."
	}
	if input.Location == "" {
		fields["location"] = "The location field is required."
	}
	if !domain.ValidSchedule(input.Schedule) {
		fields["schedule"] = "The schedule must be Full-time, Part-time or Flexible."
	}
	if !validAbsoluteURL(input.URL) {
		fields["url"] = "The url must be a valid URL."
	}

	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func validAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
