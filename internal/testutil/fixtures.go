package testutil

import (
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/google/uuid"
)

// MakeTeam builds a persistable team with sane defaults.
func MakeTeam(name string, total float64) *domain.Team {
	now := time.Now().UTC()
	return &domain.Team{
		ID:             uuid.New().String(),
		Name:           name,
		TotalHeadcount: total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MakeProject builds an active project with the given priority.
func MakeProject(name string, priority int) *domain.Project {
	now := time.Now().UTC()
	return &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Priority:  priority,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MakeAssignment builds an assignment binding a project to a team with an
// explicit hours override.
func MakeAssignment(projectID, teamID, phase string, phaseOrder int, hours, headcount float64) *domain.Assignment {
	now := time.Now().UTC()
	return &domain.Assignment{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		TeamID:        teamID,
		Phase:         phase,
		PhaseOrder:    phaseOrder,
		Headcount:     headcount,
		HoursOverride: hours,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
