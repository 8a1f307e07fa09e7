package repository

import (
	"context"

	"github.com/sietse/jobboard/internal/core/domain"
)

// AccountRepository covers the registration write path: user and
// employer are created in one transaction so a failure leaves no
// orphan row on either side.
type AccountRepository interface {
	CreateUserWithEmployer(ctx context.Context, user *domain.User, employer *domain.Employer) error
}
