package scheduler

import (
	"sort"
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// Summarize groups dated assignments by project and derives each project's
// overall window and coarse state relative to the reference date. Projects
// with no dated assignments are omitted. The returned slice is ordered by
// (priority, name, ID) so identical inputs summarize identically.
func Summarize(snap *Snapshot, today time.Time) []ProjectSummary {
	today = calendar.Midnight(today)

	byProject := make(map[string][]*domain.Assignment)
	for _, a := range snap.Assignments {
		if a.Dated() {
			byProject[a.ProjectID] = append(byProject[a.ProjectID], a)
		}
	}

	ids := make([]string, 0, len(byProject))
	for id := range byProject {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := snap.Projects[ids[i]], snap.Projects[ids[j]]
		if a == nil || b == nil {
			return ids[i] < ids[j]
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})

	summaries := make([]ProjectSummary, 0, len(ids))
	for _, id := range ids {
		project := snap.Projects[id]
		if project == nil {
			continue
		}
		items := byProject[id]

		start, end := *items[0].StartDate, *items[0].EndDate
		for _, a := range items[1:] {
			if a.StartDate.Before(start) {
				start = *a.StartDate
			}
			if a.EndDate.After(end) {
				end = *a.EndDate
			}
		}

		s, e := start, end
		summaries = append(summaries, ProjectSummary{
			ProjectID: project.ID,
			ShortID:   project.ShortID,
			Name:      project.Name,
			State:     stateFor(items, start, end, today),
			Start:     &s,
			End:       &e,
		})
	}
	return summaries
}

// stateFor labels a project relative to the reference date: before its window
// it is not started, after it is done, inside it reports the phase whose
// dates contain the day, or waiting for a gap between phases.
func stateFor(items []*domain.Assignment, start, end, today time.Time) string {
	if today.Before(start) {
		return domain.StateNotStarted
	}
	if today.After(end) {
		return domain.StateDone
	}

	inPhase := make([]*domain.Assignment, len(items))
	copy(inPhase, items)
	sort.SliceStable(inPhase, func(i, j int) bool {
		return inPhase[i].PhaseOrder < inPhase[j].PhaseOrder
	})
	for _, a := range inPhase {
		if !today.Before(*a.StartDate) && !today.After(*a.EndDate) {
			return a.Phase
		}
	}
	return domain.StateWaiting
}
