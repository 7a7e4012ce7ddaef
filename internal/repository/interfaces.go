package repository

import (
	"context"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
)

// SchedulableAssignment is a joined view of an assignment with its project
// context, used to assemble the scheduler's input snapshot.
type SchedulableAssignment struct {
	Assignment      domain.Assignment
	ProjectName     string
	ProjectPriority int
	ProjectStatus   domain.ProjectStatus
}

// SavedPlan is one persisted schedule: the encoded plan response plus the
// fingerprint downstream drift checks compare against.
type SavedPlan struct {
	ID          string
	Label       string
	Fingerprint string
	Payload     string
	CreatedAt   time.Time
}

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, t *domain.Team) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error)
	ListAll(ctx context.Context) ([]*domain.Assignment, error)
	ListSchedulable(ctx context.Context) ([]SchedulableAssignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	UpdateComputedDates(ctx context.Context, id string, start, end *time.Time) error
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Save(ctx context.Context, p *SavedPlan) error
	GetByLabel(ctx context.Context, label string) (*SavedPlan, error)
	List(ctx context.Context) ([]*SavedPlan, error)
	Delete(ctx context.Context, label string) error
}
