package repository

import (
	"context"

	"portfolio-backend/internal/domains/admin/model"
)

// Repository persists admin accounts. GetByEmail returns (nil, nil) when
// no account matches.
type Repository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Count(ctx context.Context) (int64, error)
}
