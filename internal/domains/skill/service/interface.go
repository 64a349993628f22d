package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateSkillRequest) (*model.Skill, error)
	// List returns skills ordered by order then name; category filters
	// when non-empty.
	List(ctx context.Context, category string) ([]*model.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateSkillRequest) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// GroupByCategory returns all four category buckets, empty ones
	// included, preserving List ordering inside each bucket.
	GroupByCategory(ctx context.Context) (*model.SkillsByCategory, error)
}
