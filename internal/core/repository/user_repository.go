package repository

import (
	"context"
	"errors"

	"github.com/sietse/jobboard/internal/core/domain"
)

// ErrNotFound is returned by Find* methods when no row matches.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.User, error)
}
