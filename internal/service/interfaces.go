package service

import (
	"context"

	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/importer"
	"github.com/crewplanhq/crewplan/internal/repository"
)

type TeamService interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, t *domain.Team) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type AssignmentService interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
	ListAll(ctx context.Context) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	Run(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	Save(ctx context.Context, label string, resp *contract.PlanResponse) error
	Check(ctx context.Context, label string) (*contract.PlanDrift, error)
	ListSaved(ctx context.Context) ([]*repository.SavedPlan, error)
	DeleteSaved(ctx context.Context, label string) error
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult struct {
	TeamCount       int
	ProjectCount    int
	AssignmentCount int
}

type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
