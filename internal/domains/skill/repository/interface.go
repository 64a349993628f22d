package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
)

// Repository is the data access contract for skills.
// GetByID returns (nil, nil) when no row matches.
// List is ordered by sort_order then name ascending.
type Repository interface {
	Create(ctx context.Context, skill *model.Skill) error
	List(ctx context.Context, category string) ([]*model.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
