package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/google/uuid"
)

type teamService struct {
	teams repository.TeamRepo
}

func NewTeamService(teams repository.TeamRepo) TeamService {
	return &teamService{teams: teams}
}

func (s *teamService) Create(ctx context.Context, t *domain.Team) error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.TotalHeadcount < 0 || t.BusyHeadcount < 0 {
		return fmt.Errorf("team headcount must not be negative")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.teams.Create(ctx, t)
}

func (s *teamService) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	return s.teams.GetByName(ctx, name)
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *teamService) Update(ctx context.Context, t *domain.Team) error {
	if t.TotalHeadcount < 0 || t.BusyHeadcount < 0 {
		return fmt.Errorf("team headcount must not be negative")
	}
	t.UpdatedAt = time.Now().UTC()
	return s.teams.Update(ctx, t)
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	return s.teams.Delete(ctx, id)
}
