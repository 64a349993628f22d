package service

import (
	"context"

	"portfolio-backend/internal/domains/admin/model"
)

type Service interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Seed(ctx context.Context, email, password, name string) error
}
