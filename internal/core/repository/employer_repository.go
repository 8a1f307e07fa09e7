package repository

import (
	"context"

	"github.com/sietse/jobboard/internal/core/domain"
)

type EmployerRepository interface {
	Create(ctx context.Context, employer *domain.Employer) error
	FindByID(ctx context.Context, id int64) (*domain.Employer, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Employer, error)
	Update(ctx context.Context, employer *domain.Employer) error
}
