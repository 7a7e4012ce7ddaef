package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/google/uuid"
)

// Generated holds the domain entities produced from a validated import
// schema, ready for persistence.
type Generated struct {
	Teams       []*domain.Team
	Projects    []*domain.Project
	Assignments []*domain.Assignment
}

// Convert turns a validated schema into domain entities with fresh IDs.
// Assignments keep the file's order so the stable scheduling sort sees the
// same tie-break order on every import of the same file.
func Convert(schema *ImportSchema) *Generated {
	now := time.Now().UTC()
	gen := &Generated{}

	teamIDs := make(map[string]string, len(schema.Teams))
	for _, ti := range schema.Teams {
		team := &domain.Team{
			ID:             uuid.New().String(),
			Name:           ti.Name,
			TotalHeadcount: ti.TotalHeadcount,
			BusyHeadcount:  ti.BusyHeadcount,
			TierHours:      convertTierHours(ti.TierHours),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		teamIDs[ti.Ref] = team.ID
		gen.Teams = append(gen.Teams, team)
	}

	projectIDs := make(map[string]string, len(schema.Projects))
	for _, pi := range schema.Projects {
		status := domain.ProjectActive
		if pi.Status != "" {
			status = domain.ProjectStatus(pi.Status)
		}
		project := &domain.Project{
			ID:         uuid.New().String(),
			ShortID:    strings.ToUpper(pi.ShortID),
			Name:       pi.Name,
			Priority:   pi.Priority,
			Status:     status,
			TargetDate: parseOptionalDate(pi.TargetDate),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		projectIDs[pi.Ref] = project.ID
		gen.Projects = append(gen.Projects, project)
	}

	for _, ai := range schema.Assignments {
		gen.Assignments = append(gen.Assignments, &domain.Assignment{
			ID:            uuid.New().String(),
			ProjectID:     projectIDs[ai.ProjectRef],
			TeamID:        teamIDs[ai.TeamRef],
			Phase:         ai.Phase,
			PhaseOrder:    ai.PhaseOrder,
			Tier:          ai.Tier,
			Headcount:     ai.Headcount,
			HoursOverride: ai.HoursOverride,
			EstimateHours: ai.EstimateHours,
			ReadyDate:     parseOptionalDate(ai.ReadyDate),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	return gen
}

func convertTierHours(tiers map[string]float64) map[int]float64 {
	if len(tiers) == 0 {
		return nil
	}
	out := make(map[int]float64, len(tiers))
	for k, v := range tiers {
		tier, err := strconv.Atoi(k)
		if err != nil {
			continue // rejected by validation already
		}
		out[tier] = v
	}
	return out
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
