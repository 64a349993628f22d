package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error)
	List(ctx context.Context, featured *bool) ([]*model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
