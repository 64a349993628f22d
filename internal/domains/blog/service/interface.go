package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
)

// Service is the business logic contract for blog posts.
type Service interface {
	Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error)
	List(ctx context.Context, published *bool) ([]*model.Blog, error)
	// GetBySlug returns the post and increments its view counter as a
	// side effect; repeated calls strictly increase views.
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBlogRequest) (*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.BlogStats, error)
}
