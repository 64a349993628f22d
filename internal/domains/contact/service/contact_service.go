package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/repository"
)

type contactService struct {
	repo repository.Repository
}

func NewContactService(repo repository.Repository) Service {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	ok, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.NewContactNotFound(id.String())
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, model.NewContactNotFound(id.String())
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return model.NewContactNotFound(id.String())
	}
	return nil
}
