package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
)

type projectService struct {
	repo repository.Repository
}

func NewProjectService(repo repository.Repository) Service {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	featured := true
	if req.Featured != nil {
		featured = *req.Featured
	}

	now := time.Now()
	project := &model.Project{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Contributions: req.Contributions,
		Stack:         req.Stack,
		Challenges:    req.Challenges,
		Achievements:  req.Achievements,
		Link:          req.Link,
		GithubURL:     req.GithubURL,
		LiveURL:       req.LiveURL,
		Image:         req.Image,
		Order:         order,
		Featured:      featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) List(ctx context.Context, featured *bool) ([]*model.Project, error) {
	return s.repo.List(ctx, featured)
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, model.NewProjectNotFound(id.String())
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, model.NewProjectNotFound(id.String())
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Contributions != nil {
		project.Contributions = *req.Contributions
	}
	if req.Stack != nil {
		project.Stack = req.Stack
	}
	if req.Challenges != nil {
		project.Challenges = *req.Challenges
	}
	if req.Achievements != nil {
		project.Achievements = *req.Achievements
	}
	if req.Link != nil {
		project.Link = req.Link
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	if req.LiveURL != nil {
		project.LiveURL = req.LiveURL
	}
	if req.Image != nil {
		project.Image = req.Image
	}
	if req.Order != nil {
		project.Order = *req.Order
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewProjectNotFound(id.String())
	}
	return nil
}
