package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
)

type employerRepository struct {
	db *DB
}

func NewEmployerRepository(db *DB) repository.EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) Create(ctx context.Context, employer *domain.Employer) error {
	query := `
		INSERT INTO employer (user_id, name, logo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		employer.UserID,
		employer.Name,
		employer.Logo,
		employer.CreatedAt,
		employer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create employer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get employer id: %w", err)
	}
	employer.ID = id
	return nil
}

func (r *employerRepository) FindByID(ctx context.Context, id int64) (*domain.Employer, error) {
	query := `
		SELECT id, user_id, name, logo, created_at, updated_at
		FROM employer
		WHERE id = ?
	`
	var employer domain.Employer
	err := r.db.GetContext(ctx, &employer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employer: %w", err)
	}
	return &employer, nil
}

func (r *employerRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	query := `
		SELECT id, user_id, name, logo, created_at, updated_at
		FROM employer
		WHERE user_id = ?
	`
	var employer domain.Employer
	err := r.db.GetContext(ctx, &employer, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employer: %w", err)
	}
	return &employer, nil
}

func (r *employerRepository) Update(ctx context.Context, employer *domain.Employer) error {
	query := `
		UPDATE employer
		SET name = ?, logo = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		employer.Name,
		employer.Logo,
		employer.UpdatedAt,
		employer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employer: %w", err)
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
