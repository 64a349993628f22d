package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
)

// Repository is the data access contract for projects.
// GetByID returns (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context, featured *bool) ([]*model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
