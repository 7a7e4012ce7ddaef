package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/plan"
	"github.com/crewplanhq/crewplan/internal/repository"
	"github.com/crewplanhq/crewplan/internal/scheduler"
	"github.com/google/uuid"
)

type planService struct {
	teams       repository.TeamRepo
	projects    repository.ProjectRepo
	assignments repository.AssignmentRepo
	plans       repository.PlanRepo
	uow         db.UnitOfWork
	logger      *slog.Logger
	observer    UseCaseObserver
}

func NewPlanService(
	teams repository.TeamRepo,
	projects repository.ProjectRepo,
	assignments repository.AssignmentRepo,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		teams:       teams,
		projects:    projects,
		assignments: assignments,
		plans:       plans,
		uow:         uow,
		logger:      logger,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Run(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	started := time.Now()

	snap, err := s.loadSnapshot(ctx, req.RunStart)
	if err != nil {
		return nil, err
	}

	result, err := scheduler.Run(snap, s.logger)
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "plan_run",
			Duration: time.Since(started),
			Err:      err,
		})
		return nil, fmt.Errorf("scheduling run: %w", err)
	}

	if req.Persist {
		if err := s.persistDates(ctx, result.Assignments); err != nil {
			return nil, fmt.Errorf("persisting computed dates: %w", err)
		}
	}

	resp, err := s.buildResponse(snap, result)
	if err != nil {
		return nil, err
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "plan_run",
		Duration: time.Since(started),
		Fields: map[string]any{
			"assignments": len(result.Assignments),
			"unscheduled": len(result.Unscheduled),
			"persisted":   req.Persist,
		},
	})
	return resp, nil
}

func (s *planService) Save(ctx context.Context, label string, resp *contract.PlanResponse) error {
	if label == "" {
		return fmt.Errorf("plan label is required")
	}
	if resp == nil || resp.Fingerprint == "" {
		return fmt.Errorf("plan response has no fingerprint")
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encoding plan payload: %w", err)
	}
	return s.plans.Save(ctx, &repository.SavedPlan{
		ID:          uuid.New().String(),
		Label:       label,
		Fingerprint: resp.Fingerprint,
		Payload:     string(payload),
		CreatedAt:   time.Now().UTC(),
	})
}

// Check reruns the schedule from current data and compares its fingerprint
// against the saved plan. The rerun never persists.
func (s *planService) Check(ctx context.Context, label string) (*contract.PlanDrift, error) {
	saved, err := s.plans.GetByLabel(ctx, label)
	if err != nil {
		return nil, err
	}

	var savedResp contract.PlanResponse
	if err := json.Unmarshal([]byte(saved.Payload), &savedResp); err != nil {
		return nil, fmt.Errorf("decoding saved plan %q: %w", label, err)
	}

	var runStart *time.Time
	if savedResp.RunStart != "" {
		t, err := time.ParseInLocation(contract.DateLayout, savedResp.RunStart, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("saved plan %q has invalid run start: %w", label, err)
		}
		runStart = &t
	}

	current, err := s.Run(ctx, contract.PlanRequest{RunStart: runStart})
	if err != nil {
		return nil, err
	}

	return &contract.PlanDrift{
		Label:            saved.Label,
		SavedAt:          saved.CreatedAt.UTC().Format(time.RFC3339),
		SavedFingerprint: saved.Fingerprint,
		PlanFingerprint:  current.Fingerprint,
		Drifted:          saved.Fingerprint != current.Fingerprint,
	}, nil
}

func (s *planService) ListSaved(ctx context.Context) ([]*repository.SavedPlan, error) {
	return s.plans.List(ctx)
}

func (s *planService) DeleteSaved(ctx context.Context, label string) error {
	return s.plans.Delete(ctx, label)
}

// loadSnapshot assembles the scheduler input from storage. Only active
// projects and their assignments participate in a run.
func (s *planService) loadSnapshot(ctx context.Context, runStart *time.Time) (*scheduler.Snapshot, error) {
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
		a := &rows[i].Assignment
		// A project-level start hint floors the ready date of all its work.
		if p, ok := projectMap[a.ProjectID]; ok && p.StartHint != nil {
			if a.ReadyDate == nil || p.StartHint.After(*a.ReadyDate) {
				hint := *p.StartHint
				a.ReadyDate = &hint
			}
		}
		assignments = append(assignments, a)
	}

	start := time.Now().UTC()
	if runStart != nil {
		start = *runStart
	}

	return &scheduler.Snapshot{
		Teams:       teamMap,
		Projects:    projectMap,
		Assignments: assignments,
		RunStart:    calendar.Midnight(start),
	}, nil
}

func (s *planService) persistDates(ctx context.Context, assignments []*domain.Assignment) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)
		for _, a := range assignments {
			if err := txAssignments.UpdateComputedDates(ctx, a.ID, a.StartDate, a.EndDate); err != nil {
				return fmt.Errorf("updating assignment %s: %w", a.ID, err)
			}
		}
		return nil
	})
}

func (s *planService) buildResponse(snap *scheduler.Snapshot, result *scheduler.Result) (*contract.PlanResponse, error) {
	resp := &contract.PlanResponse{
		RunStart:      snap.RunStart.Format(contract.DateLayout),
		Assignments:   make([]contract.PlanAssignmentView, 0, len(result.Assignments)),
		Summaries:     make([]contract.ProjectSummaryView, 0, len(result.Summaries)),
		ClampWarnings: result.ClampWarnings,
	}

	for _, a := range result.Assignments {
		view := contract.PlanAssignmentView{
			AssignmentID: a.ID,
			ProjectID:    a.ProjectID,
			TeamID:       a.TeamID,
			Phase:        a.Phase,
			PhaseOrder:   a.PhaseOrder,
			Headcount:    a.Headcount,
			Start:        contract.FormatDate(a.StartDate),
			End:          contract.FormatDate(a.EndDate),
			SkipReason:   string(result.Unscheduled[a.ID]),
		}
		if p, ok := snap.Projects[a.ProjectID]; ok {
			view.ProjectName = p.Name
		}
		if t, ok := snap.Teams[a.TeamID]; ok {
			view.TeamName = t.Name
		}
		resp.Assignments = append(resp.Assignments, view)
	}

	for _, sum := range result.Summaries {
		resp.Summaries = append(resp.Summaries, contract.ProjectSummaryView{
			ProjectID: sum.ProjectID,
			ShortID:   sum.ShortID,
			Name:      sum.Name,
			State:     sum.State,
			Start:     contract.FormatDate(sum.Start),
			End:       contract.FormatDate(sum.End),
		})
	}

	fp, err := plan.Fingerprint(resp)
	if err != nil {
		return nil, fmt.Errorf("fingerprinting plan: %w", err)
	}
	resp.Fingerprint = fp
	return resp, nil
}
