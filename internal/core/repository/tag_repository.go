package repository

import (
	"context"

	"github.com/sietse/jobboard/internal/core/domain"
)

type TagRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]*domain.Tag, error)
	// ListByJob returns the tags attached to one job, name order.
	ListByJob(ctx context.Context, jobID int64) ([]*domain.Tag, error)
}
