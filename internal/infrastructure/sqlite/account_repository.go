package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
)

type accountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateUserWithEmployer inserts the user and its employer in one
// transaction. Either both rows exist afterwards or neither does.
func (r *accountRepository) CreateUserWithEmployer(ctx context.Context, user *domain.User, employer *domain.Employer) error {
	return r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO user (name, email, password, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		userID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get user id: %w", err)
		}

		result, err = tx.ExecContext(ctx, `
			INSERT INTO employer (user_id, name, logo, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, userID, employer.Name, employer.Logo, employer.CreatedAt, employer.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create employer: %w", err)
		}

		employerID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get employer id: %w", err)
		}

		user.ID = userID
		employer.ID = employerID
		employer.UserID = userID
		return nil
	})
}
