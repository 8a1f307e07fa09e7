package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/repository"
)

type tagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.GetContext(ctx, &tag, `SELECT id, name, created_at FROM tag WHERE name = ?`, domain.NormalizeTagName(name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := r.db.SelectContext(ctx, &tags, `SELECT id, name, created_at FROM tag ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) ListByJob(ctx context.Context, jobID int64) ([]*domain.Tag, error) {
	query := `
		SELECT t.id, t.name, t.created_at
		FROM tag t
		JOIN job_tag jt ON jt.tag_id = t.id
		WHERE jt.job_id = ?
		ORDER BY t.name
	`
	var tags []*domain.Tag
	if err := r.db.SelectContext(ctx, &tags, query, jobID); err != nil {
		return nil, fmt.Errorf("failed to list job tags: %w", err)
	}
	return tags, nil
}
