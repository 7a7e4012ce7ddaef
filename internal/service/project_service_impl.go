package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.ShortID != "" {
		if err := p.ValidateShortID(); err != nil {
			return err
		}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid project status %q", p.Status)
	}
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
