package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/crewplanhq/crewplan/internal/scheduler"
)

type statusService struct {
	teams       repository.TeamRepo
	projects    repository.ProjectRepo
	assignments repository.AssignmentRepo
}

func NewStatusService(
	teams repository.TeamRepo,
	projects repository.ProjectRepo,
	assignments repository.AssignmentRepo,
) StatusService {
	return &statusService{
		teams:       teams,
		projects:    projects,
		assignments: assignments,
	}
}

// GetStatus summarizes the stored schedule against a reference date. It reads
// the dates a previous persisted run wrote and never reschedules.
func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	today := calendar.Midnight(now)

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	teamMap := make(map[string]*domain.Team, len(teams))
	for _, t := range teams {
		teamMap[t.ID] = t
	}

	projects, err := s.projects.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	projectMap := make(map[string]*domain.Project)
	for _, p := range projects {
		if p.Status == domain.ProjectActive {
			projectMap[p.ID] = p
		}
	}

	rows, err := s.assignments.ListSchedulable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	assignments := make([]*domain.Assignment, 0, len(rows))
	for i := range rows {
		assignments = append(assignments, &rows[i].Assignment)
	}

	snap := &scheduler.Snapshot{
		Teams:       teamMap,
		Projects:    projectMap,
		Assignments: assignments,
		RunStart:    today,
	}

	resp := &contract.StatusResponse{Reference: today.Format(contract.DateLayout)}
	for _, sum := range scheduler.Summarize(snap, today) {
		resp.Projects = append(resp.Projects, contract.ProjectSummaryView{
			ProjectID: sum.ProjectID,
			ShortID:   sum.ShortID,
			Name:      sum.Name,
			State:     sum.State,
			Start:     contract.FormatDate(sum.Start),
			End:       contract.FormatDate(sum.End),
		})
	}
	return resp, nil
}
