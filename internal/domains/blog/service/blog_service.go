package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/repository"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

const (
	statsCacheKey = "blogs:stats"
	statsCacheTTL = time.Minute
)

type blogService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewBlogService(repo repository.Repository, cache cache.Cache) Service {
	return &blogService{repo: repo, cache: cache}
}

func (s *blogService) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	publishedAt := time.Now()
	if req.PublishedAt != "" {
		parsed, err := time.Parse(model.DateLayout, req.PublishedAt)
		if err == nil {
			publishedAt = parsed
		}
	}

	readTime := 5
	if req.ReadTime != nil {
		readTime = *req.ReadTime
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	now := time.Now()
	blog := &model.Blog{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        utils.GenerateSlug(req.Title),
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		CoverImage:  req.CoverImage,
		Tags:        req.Tags,
		Author:      req.Author,
		PublishedAt: publishedAt,
		Views:       0,
		ReadTime:    readTime,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return blog, nil
}

func (s *blogService) List(ctx context.Context, published *bool) ([]*model.Blog, error) {
	return s.repo.List(ctx, published)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	blog, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, model.NewBlogNotFoundBySlug(slug)
	}

	// Read-then-write on purpose: concurrent readers of the same post may
	// lose increments, which is acceptable for a vanity counter.
	blog.Views++
	if err := s.repo.UpdateViews(ctx, blog.ID, blog.Views); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBlogRequest) (*model.Blog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, model.NewBlogNotFound(id.String())
	}

	if req.Title != nil && *req.Title != blog.Title {
		blog.Title = *req.Title
		blog.Slug = utils.GenerateSlug(*req.Title)
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.CoverImage != nil {
		blog.CoverImage = req.CoverImage
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.PublishedAt != nil && *req.PublishedAt != "" {
		if parsed, err := time.Parse(model.DateLayout, *req.PublishedAt); err == nil {
			blog.PublishedAt = parsed
		}
	}
	if req.ReadTime != nil {
		blog.ReadTime = *req.ReadTime
	}
	if req.Published != nil {
		blog.Published = *req.Published
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewBlogNotFound(id.String())
	}

	s.invalidateStats(ctx)
	return nil
}

func (s *blogService) Stats(ctx context.Context) (*model.BlogStats, error) {
	if s.cache != nil {
		var cached model.BlogStats
		if found, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
			logger.Error("failed to cache blog stats", err)
		}
	}

	return stats, nil
}

func (s *blogService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		logger.Error("failed to invalidate blog stats cache", err)
	}
}
