package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
)

// Repository is the data access contract for blog posts.
// Get methods return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, blog *model.Blog) error
	List(ctx context.Context, published *bool) ([]*model.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)
	Update(ctx context.Context, blog *model.Blog) error
	// UpdateViews persists a new view count. Plain write, no CAS: under
	// concurrent reads of the same post the last writer wins.
	UpdateViews(ctx context.Context, id uuid.UUID, views int) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Stats(ctx context.Context) (*model.BlogStats, error)
}
