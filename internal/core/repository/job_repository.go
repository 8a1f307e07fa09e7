package repository

import (
	"context"

	"github.com/sietse/jobboard/internal/core/domain"
)

type JobFilter struct {
	// Case-insensitive substring match over title, salary and location.
	Search *string
	// Restrict to jobs carrying this tag (normalized name).
	TagID *int64
	// Pagination; zero values mean no paging.
	Page    int
	PerPage int
}

type JobRepository interface {
	// Create inserts the job and attaches the given normalized tag
	// names, creating missing tags, in a single transaction.
	Create(ctx context.Context, job *domain.Job, tagNames []string) error
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	// Update persists the job's current field values. When replaceTags
	// is true the association set is replaced by tagNames.
	Update(ctx context.Context, job *domain.Job, replaceTags bool, tagNames []string) error
	Delete(ctx context.Context, id int64) error
	// List returns jobs newest first with Employer and Tags populated.
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	Count(ctx context.Context, filter JobFilter) (int, error)
}
