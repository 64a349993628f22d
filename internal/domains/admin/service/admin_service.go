package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/domains/admin/model"
	"portfolio-backend/internal/domains/admin/repository"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

type adminService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewAdminService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &adminService{repo: repo, jwtManager: jwtManager}
}

// Login verifies credentials and issues a signed token. Unknown emails and
// wrong passwords produce the same error.
func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, model.NewInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(admin.ID.String(), admin.Email)
	if err != nil {
		return nil, model.NewAdminStoreError(err)
	}

	return &model.LoginResponse{AccessToken: token}, nil
}

// Seed inserts the bootstrap admin account when the table is empty. It is
// safe to call on every startup.
func (s *adminService) Seed(ctx context.Context, email, password, name string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.NewAdminStoreError(err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("seeded initial admin account", map[string]interface{}{
		"email": email,
	})
	return nil
}
