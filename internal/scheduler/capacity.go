package scheduler

import (
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
	"github.com/crewplanhq/crewplan/internal/domain"
)

// headcountEpsilon absorbs float error when summing fractional headcounts.
const headcountEpsilon = 1e-9

// interval is one committed block on a team's ledger. Start and End are
// inclusive calendar dates.
type interval struct {
	start     time.Time
	end       time.Time
	headcount float64
}

// CapacityTracker keeps one occupancy ledger per team for a single run.
// Correctness depends only on summation, so committed intervals are appended
// without merging. Trackers are created fresh per run and discarded with it.
type CapacityTracker struct {
	teams   map[string]*domain.Team
	ledgers map[string][]interval
}

func NewCapacityTracker(teams map[string]*domain.Team) *CapacityTracker {
	return &CapacityTracker{
		teams:   teams,
		ledgers: make(map[string][]interval),
	}
}

// Fits reports whether the team has room for headcount more people on every
// business day in the window of durationDays business days starting at start.
// Teams with zero (or missing) total headcount never fit anything.
func (c *CapacityTracker) Fits(teamID string, headcount float64, start time.Time, durationDays int) bool {
	team := c.teams[teamID]
	if team == nil || team.TotalHeadcount <= 0 {
		return false
	}

	day := calendar.Midnight(start)
	for i := 0; i < durationDays; i++ {
		if i > 0 {
			day = calendar.NextBusinessDay(day)
		}
		used := team.BusyHeadcount
		for _, iv := range c.ledgers[teamID] {
			if !day.Before(iv.start) && !day.After(iv.end) {
				used += iv.headcount
			}
		}
		if used+headcount > team.TotalHeadcount+headcountEpsilon {
			return false
		}
	}
	return true
}

// Commit appends an interval to the team's ledger.
func (c *CapacityTracker) Commit(teamID string, start, end time.Time, headcount float64) {
	c.ledgers[teamID] = append(c.ledgers[teamID], interval{
		start:     calendar.Midnight(start),
		end:       calendar.Midnight(end),
		headcount: headcount,
	})
}

// earliestOverlapEnd returns the end date of the earliest-ending committed
// interval that overlaps [start, end], if any. The slot search uses it to
// jump past an existing block instead of re-testing every day under it.
func (c *CapacityTracker) earliestOverlapEnd(teamID string, start, end time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, iv := range c.ledgers[teamID] {
		if iv.start.After(end) || iv.end.Before(start) {
			continue
		}
		if !found || iv.end.Before(best) {
			best = iv.end
			found = true
		}
	}
	return best, found
}
