package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// FormatTeamList renders a team table with capacity and tier information.
func FormatTeamList(teams []*domain.Team) string {
	rows := make([][]string, 0, len(teams))
	for _, t := range teams {
		free := t.TotalHeadcount - t.BusyHeadcount
		rows = append(rows, []string{
			t.Name,
			fmt.Sprintf("%.2g", t.TotalHeadcount),
			fmt.Sprintf("%.2g", t.BusyHeadcount),
			fmt.Sprintf("%.2g", free),
			tierCell(t.TierHours),
			Dim(shortID(t.ID)),
		})
	}
	return RenderTable([]string{"Team", "Total", "Busy", "Free", "Tier hours", "ID"}, rows)
}

// FormatProjectList renders projects with priority and status.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.DisplayID(),
			fmt.Sprintf("%d", p.Priority),
			statusCell(p.Status),
			Dim(shortID(p.ID)),
		})
	}
	return RenderTable([]string{"Project", "Priority", "Status", "ID"}, rows)
}

// FormatAssignmentList renders assignments with their computed dates when a
// persisted run has produced any.
func FormatAssignmentList(assignments []*domain.Assignment, projectNames, teamNames map[string]string) string {
	rows := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, []string{
			projectNames[a.ProjectID],
			a.Phase,
			fmt.Sprintf("%d", a.PhaseOrder),
			teamNames[a.TeamID],
			fmt.Sprintf("%.2g", a.Headcount),
			timeCell(a.StartDate),
			timeCell(a.EndDate),
			Dim(shortID(a.ID)),
		})
	}
	return RenderTable([]string{"Project", "Phase", "Order", "Team", "People", "Start", "End", "ID"}, rows)
}

func tierCell(tiers map[int]float64) string {
	if len(tiers) == 0 {
		return Dim("-")
	}
	keys := make([]int, 0, len(tiers))
	for k := range tiers {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d=%.4gh", k, tiers[k]))
	}
	return strings.Join(parts, " ")
}

func statusCell(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render(string(status))
	case domain.ProjectPaused:
		return StyleYellow.Render(string(status))
	case domain.ProjectArchived:
		return StyleDim.Render(string(status))
	default:
		return StyleBlue.Render(string(status))
	}
}

func timeCell(t *time.Time) string {
	if t == nil {
		return Dim("-")
	}
	return t.Format(contract.DateLayout)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
