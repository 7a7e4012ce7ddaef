package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/google/uuid"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	projects    repository.ProjectRepo
	teams       repository.TeamRepo
}

func NewAssignmentService(
	assignments repository.AssignmentRepo,
	projects repository.ProjectRepo,
	teams repository.TeamRepo,
) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		projects:    projects,
		teams:       teams,
	}
}

func (s *assignmentService) Create(ctx context.Context, a *domain.Assignment) error {
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.assignments.Create(ctx, a)
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *assignmentService) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	return s.assignments.ListByProject(ctx, projectID)
}

func (s *assignmentService) ListAll(ctx context.Context) ([]*domain.Assignment, error) {
	return s.assignments.ListAll(ctx)
}

func (s *assignmentService) Update(ctx context.Context, a *domain.Assignment) error {
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}

// validate checks referential integrity up front so a bad reference fails at
// entry instead of surfacing as a skipped item at plan time.
func (s *assignmentService) validate(ctx context.Context, a *domain.Assignment) error {
	if a.Phase == "" {
		return fmt.Errorf("assignment phase is required")
	}
	if a.Headcount <= 0 {
		return fmt.Errorf("assignment headcount must be positive")
	}
	if a.HoursOverride < 0 || a.EstimateHours < 0 {
		return fmt.Errorf("assignment hours must not be negative")
	}
	if _, err := s.projects.GetByID(ctx, a.ProjectID); err != nil {
		return fmt.Errorf("checking project %s: %w", a.ProjectID, err)
	}
	if _, err := s.teams.GetByID(ctx, a.TeamID); err != nil {
		return fmt.Errorf("checking team %s: %w", a.TeamID, err)
	}
	return nil
}
