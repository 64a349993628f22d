package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill/model"
	"portfolio-backend/internal/domains/skill/repository"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	byCategoryCacheKey = "skills:by-category"
	byCategoryCacheTTL = 5 * time.Minute
)

type skillService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewSkillService(repo repository.Repository, cache cache.Cache) Service {
	return &skillService{repo: repo, cache: cache}
}

func (s *skillService) Create(ctx context.Context, req *model.CreateSkillRequest) (*model.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	level := 50
	if req.Level != nil {
		level = *req.Level
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	now := time.Now()
	skill := &model.Skill{
		ID:        uuid.New(),
		Name:      req.Name,
		Category:  req.Category,
		Level:     level,
		Icon:      req.Icon,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}

	s.invalidateGrouping(ctx)
	return skill, nil
}

func (s *skillService) List(ctx context.Context, category string) ([]*model.Skill, error) {
	return s.repo.List(ctx, category)
}

func (s *skillService) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, model.NewSkillNotFound(id.String())
	}
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateSkillRequest) (*model.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, model.NewSkillNotFound(id.String())
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = req.Icon
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}

	s.invalidateGrouping(ctx)
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewSkillNotFound(id.String())
	}

	s.invalidateGrouping(ctx)
	return nil
}

func (s *skillService) GroupByCategory(ctx context.Context) (*model.SkillsByCategory, error) {
	if s.cache != nil {
		var cached model.SkillsByCategory
		if found, err := s.cache.Get(ctx, byCategoryCacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	skills, err := s.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	// Buckets start non-nil so empty categories serialize as [].
	grouped := &model.SkillsByCategory{
		Backend:  []*model.Skill{},
		Database: []*model.Skill{},
		Frontend: []*model.Skill{},
		Other:    []*model.Skill{},
	}

	for _, sk := range skills {
		switch sk.Category {
		case model.CategoryBackend:
			grouped.Backend = append(grouped.Backend, sk)
		case model.CategoryDatabase:
			grouped.Database = append(grouped.Database, sk)
		case model.CategoryFrontend:
			grouped.Frontend = append(grouped.Frontend, sk)
		default:
			grouped.Other = append(grouped.Other, sk)
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, byCategoryCacheKey, grouped, byCategoryCacheTTL); err != nil {
			logger.Error("failed to cache skills grouping", err)
		}
	}

	return grouped, nil
}

func (s *skillService) invalidateGrouping(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, byCategoryCacheKey); err != nil {
		logger.Error("failed to invalidate skills grouping cache", err)
	}
}
