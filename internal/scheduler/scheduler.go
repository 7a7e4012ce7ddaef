// Package scheduler computes a concrete calendar schedule for a portfolio of
// projects competing for fixed team capacities. It is a greedy,
// priority-ordered heuristic, not an optimal solver: assignments are
// considered once, in a single deterministic order, and committed dates are
// final for the run.
package scheduler

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// maxDurationDays caps a single assignment's duration at roughly the business
// days available between the calendar bounds, so effort-to-duration
// conversion cannot overflow date arithmetic.
const maxDurationDays = 52500

// Run computes the schedule for one snapshot. The capacity tracker and
// dependency resolver are created fresh per call and discarded with it, so
// concurrent runs on independent snapshots cannot interfere. Identical
// snapshots produce byte-identical results; downstream drift detection hashes
// the output and depends on that.
//
// Clamped dates are logged at warning level and counted on the result, never
// raised: extreme but finite inputs (a 100,000-hour assignment) must not
// crash the run.
func Run(snap *Snapshot, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := validateTeams(snap.Teams); err != nil {
		return nil, err
	}

	runStart := calendar.Midnight(snap.RunStart)
	tracker := NewCapacityTracker(snap.Teams)
	deps := NewDependencyResolver()
	res := &Result{
		Assignments: snap.Assignments,
		Unscheduled: make(map[string]domain.SkipReason),
	}

	// A skipped assignment leaves the run undated even if the snapshot
	// carried dates from an earlier persisted run.
	skip := func(a *domain.Assignment, reason domain.SkipReason) {
		res.Unscheduled[a.ID] = reason
		a.StartDate, a.EndDate = nil, nil
	}

	for _, a := range sortedForRun(snap) {
		project := snap.Projects[a.ProjectID]
		if project == nil {
			skip(a, domain.SkipUnknownProject)
			continue
		}
		team := snap.Teams[a.TeamID]
		if team == nil {
			skip(a, domain.SkipUnknownTeam)
			continue
		}
		if team.TotalHeadcount == 0 {
			skip(a, domain.SkipZeroCapacity)
			continue
		}
		if a.Headcount > team.TotalHeadcount+headcountEpsilon {
			skip(a, domain.SkipHeadcountTooHigh)
			continue
		}

		earliest := runStart
		if a.ReadyDate != nil {
			if ready := calendar.Midnight(*a.ReadyDate); ready.After(earliest) {
				earliest = ready
			}
		}
		if gate, ok := deps.EarliestFor(a.ProjectID); ok && gate.After(earliest) {
			earliest = gate
		}

		durationDays, capped := durationFor(a, team)
		if capped {
			res.ClampWarnings++
			logger.Warn("assignment duration capped at calendar bounds",
				"assignment", a.ID, "project", project.Name, "phase", a.Phase)
		}

		start, err := FindSlot(tracker, a.TeamID, a.Headcount, durationDays, earliest)
		if err != nil {
			return nil, fmt.Errorf("scheduling %s / %s: %w", project.Name, a.Phase, err)
		}
		start = clampLogged(start, a, logger, res)
		end := clampLogged(calendar.AddBusinessDays(start, durationDays-1), a, logger, res)

		tracker.Commit(a.TeamID, start, end, a.Headcount)
		deps.Advance(a.ProjectID, end)

		s, e := start, end
		a.StartDate, a.EndDate = &s, &e
	}

	res.Summaries = Summarize(snap, runStart)
	return res, nil
}

// validateTeams fails the whole run on any negative total headcount, before
// any assignment is processed. Team IDs are checked in sorted order so the
// reported offender is deterministic.
func validateTeams(teams map[string]*domain.Team) error {
	ids := make([]string, 0, len(teams))
	for id := range teams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if teams[id].TotalHeadcount < 0 {
			return fmt.Errorf("team %s (%s): total %.2f: %w",
				teams[id].Name, id, teams[id].TotalHeadcount, ErrNegativeHeadcount)
		}
	}
	return nil
}

// sortedForRun returns the assignments in scheduling order: project priority,
// then phase order, ties keeping input order. The sort only fixes the order
// work is considered; when capacity is abundant, independent projects still
// land on the same dates.
func sortedForRun(snap *Snapshot) []*domain.Assignment {
	order := make([]*domain.Assignment, len(snap.Assignments))
	copy(order, snap.Assignments)
	sort.SliceStable(order, func(i, j int) bool {
		pi, pj := projectPriority(snap, order[i].ProjectID), projectPriority(snap, order[j].ProjectID)
		if pi != pj {
			return pi < pj
		}
		return order[i].PhaseOrder < order[j].PhaseOrder
	})
	return order
}

func projectPriority(snap *Snapshot, projectID string) int {
	if p := snap.Projects[projectID]; p != nil {
		return p.Priority
	}
	return math.MaxInt32
}

// durationFor converts resolved effort to business days, with a floor of one
// day and a cap that keeps date arithmetic inside the calendar bounds.
func durationFor(a *domain.Assignment, team *domain.Team) (int, bool) {
	hours := domain.ResolveHours(a, team)
	headcount := a.Headcount
	if headcount <= 0 {
		headcount = 1
	}
	days := math.Ceil(hours / (headcount * HoursPerPersonDay))
	if days < 1 {
		return 1, false
	}
	if days > maxDurationDays {
		return maxDurationDays, true
	}
	return int(days), false
}

func clampLogged(t time.Time, a *domain.Assignment, logger *slog.Logger, res *Result) time.Time {
	clamped, warn := calendar.Clamp(t)
	if warn {
		res.ClampWarnings++
		logger.Warn("computed date clamped to calendar bounds",
			"assignment", a.ID, "date", t.Format("2006-01-02"))
	}
	return clamped
}
