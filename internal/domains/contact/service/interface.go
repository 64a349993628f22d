package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
)

type Service interface {
	Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
