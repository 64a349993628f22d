package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
)

// Repository persists contact messages. Read operations return (nil, nil)
// when no row matches.
type Repository interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]*model.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
