package scheduler

import (
	"testing"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func teamMap(teams ...*domain.Team) map[string]*domain.Team {
	m := make(map[string]*domain.Team, len(teams))
	for _, t := range teams {
		m[t.ID] = t
	}
	return m
}

func TestFits_EmptyLedger(t *testing.T) {
	tracker := NewCapacityTracker(teamMap(&domain.Team{ID: "arch", Name: "Arch", TotalHeadcount: 2}))

	assert.True(t, tracker.Fits("arch", 2, date(2025, time.June, 16), 5))
	assert.False(t, tracker.Fits("arch", 3, date(2025, time.June, 16), 1), "over total")
}

func TestFits_BusyHeadcountAppliesEveryDay(t *testing.T) {
	tracker := NewCapacityTracker(teamMap(&domain.Team{ID: "arch", Name: "Arch", TotalHeadcount: 2, BusyHeadcount: 1.5}))

	assert.True(t, tracker.Fits("arch", 0.5, date(2025, time.June, 16), 10))
	assert.False(t, tracker.Fits("arch", 1, date(2025, time.June, 16), 1))
}

func TestFits_CommittedIntervalCountsOnEveryCoveredDay(t *testing.T) {
	tracker := NewCapacityTracker(teamMap(&domain.Team{ID: "arch", Name: "Arch", TotalHeadcount: 2}))
	tracker.Commit("arch", date(2025, time.June, 18), date(2025, time.June, 20), 2)

	assert.True(t, tracker.Fits("arch", 2, date(2025, time.June, 16), 2), "window ends before the block")
	assert.False(t, tracker.Fits("arch", 1, date(2025, time.June, 16), 3), "third day hits the block")
	assert.True(t, tracker.Fits("arch", 2, date(2025, time.June, 23), 5), "window after the block")
}

func TestFits_FractionalHeadcountsSum(t *testing.T) {
	tracker := NewCapacityTracker(teamMap(&domain.Team{ID: "arch", Name: "Arch", TotalHeadcount: 1}))
	tracker.Commit("arch", date(2025, time.June, 16), date(2025, time.June, 17), 0.5)

	assert.True(t, tracker.Fits("arch", 0.5, date(2025, time.June, 16), 2), "exactly full is still a fit")
	assert.False(t, tracker.Fits("arch", 0.6, date(2025, time.June, 16), 1))
}

func TestFits_ZeroTotalTeamNeverFits(t *testing.T) {
	tracker := NewCapacityTracker(teamMap(&domain.Team{ID: "ghost", Name: "Ghost", TotalHeadcount: 0}))

	assert.False(t, tracker.Fits("ghost", 0.1, date(2025, time.June, 16), 1))
	assert.False(t, tracker.Fits("unknown", 1, date(2025, time.June, 16), 1), "unknown team never fits")
}

func TestEarliestOverlapEnd(t *testing.T) {
	tracker := NewCapacityTracker(teamMap(&domain.Team{ID: "arch", Name: "Arch", TotalHeadcount: 2}))
	tracker.Commit("arch", date(2025, time.June, 18), date(2025, time.June, 24), 1)
	tracker.Commit("arch", date(2025, time.June, 16), date(2025, time.June, 20), 1)

	end, ok := tracker.earliestOverlapEnd("arch", date(2025, time.June, 17), date(2025, time.June, 19))
	assert.True(t, ok)
	assert.Equal(t, date(2025, time.June, 20), end, "earliest-ending overlapping block wins")

	_, ok = tracker.earliestOverlapEnd("arch", date(2025, time.June, 25), date(2025, time.June, 27))
	assert.False(t, ok, "no block overlaps the window")
}
