package scheduler

import (
	"testing"
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeam(id string, total float64) *domain.Team {
	return &domain.Team{ID: id, Name: id, TotalHeadcount: total}
}

func makeProject(id string, priority int) *domain.Project {
	return &domain.Project{ID: id, Name: id, Priority: priority, Status: domain.ProjectActive}
}

func projectMap(projects ...*domain.Project) map[string]*domain.Project {
	m := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		m[p.ID] = p
	}
	return m
}

func makeAssignment(id, projectID, teamID string, phaseOrder int, hours, headcount float64) *domain.Assignment {
	return &domain.Assignment{
		ID:            id,
		ProjectID:     projectID,
		TeamID:        teamID,
		Phase:         id,
		PhaseOrder:    phaseOrder,
		HoursOverride: hours,
		Headcount:     headcount,
	}
}

// exampleSnapshot is the reference scenario: Arch (2 seats) and Model (4
// seats); Alpha (priority 1) has an Arch phase then a Model phase; Beta
// (priority 2) has only an Arch phase. Run start Monday 2025-06-16.
func exampleSnapshot() *Snapshot {
	return &Snapshot{
		Teams:    teamMap(makeTeam("arch", 2), makeTeam("model", 4)),
		Projects: projectMap(makeProject("alpha", 1), makeProject("beta", 2)),
		Assignments: []*domain.Assignment{
			makeAssignment("alpha-arch", "alpha", "arch", 1, 16, 1),
			makeAssignment("alpha-model", "alpha", "model", 2, 40, 1),
			makeAssignment("beta-arch", "beta", "arch", 1, 16, 1),
		},
		RunStart: date(2025, time.June, 16),
	}
}

func TestRun_ExampleScenario(t *testing.T) {
	snap := exampleSnapshot()

	res, err := Run(snap, nil)
	require.NoError(t, err)
	require.Empty(t, res.Unscheduled)

	alphaArch, alphaModel, betaArch := snap.Assignments[0], snap.Assignments[1], snap.Assignments[2]

	// Two Arch seats, two concurrent 1-person needs: both start on run day.
	assert.Equal(t, date(2025, time.June, 16), *alphaArch.StartDate)
	assert.Equal(t, date(2025, time.June, 16), *betaArch.StartDate)
	assert.Equal(t, date(2025, time.June, 17), *alphaArch.EndDate, "16h at 1 person is two days")

	// The Model phase starts strictly after the Arch phase ends.
	assert.True(t, alphaModel.StartDate.After(*alphaArch.EndDate))
	assert.Equal(t, date(2025, time.June, 18), *alphaModel.StartDate)
	assert.Equal(t, date(2025, time.June, 24), *alphaModel.EndDate, "40h at 1 person is five days")
}

func TestRun_PhaseOrderingWithinProject(t *testing.T) {
	snap := &Snapshot{
		Teams:    teamMap(makeTeam("dev", 10)),
		Projects: projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{
			makeAssignment("qa", "alpha", "dev", 3, 8, 1),
			makeAssignment("build", "alpha", "dev", 2, 24, 1),
			makeAssignment("design", "alpha", "dev", 1, 16, 1),
		},
		RunStart: date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)

	design, build, qa := snap.Assignments[2], snap.Assignments[1], snap.Assignments[0]
	assert.True(t, build.StartDate.After(*design.EndDate), "build after design despite input order")
	assert.True(t, qa.StartDate.After(*build.EndDate), "qa after build")
}

func TestRun_PriorityWinsUnderScarcity(t *testing.T) {
	snap := &Snapshot{
		Teams:    teamMap(makeTeam("dev", 1)),
		Projects: projectMap(makeProject("low", 5), makeProject("high", 1)),
		Assignments: []*domain.Assignment{
			makeAssignment("low-work", "low", "dev", 1, 16, 1),
			makeAssignment("high-work", "high", "dev", 1, 16, 1),
		},
		RunStart: date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)

	low, high := snap.Assignments[0], snap.Assignments[1]
	assert.Equal(t, date(2025, time.June, 16), *high.StartDate)
	assert.True(t, low.StartDate.After(*high.EndDate),
		"with one seat the lower-priority project waits out the higher one entirely")
}

func TestRun_IndependentProjectsRunInParallelUnderAbundance(t *testing.T) {
	snap := &Snapshot{
		Teams:    teamMap(makeTeam("dev", 2)),
		Projects: projectMap(makeProject("high", 1), makeProject("low", 2)),
		Assignments: []*domain.Assignment{
			makeAssignment("high-work", "high", "dev", 1, 16, 1),
			makeAssignment("low-work", "low", "dev", 1, 16, 1),
		},
		RunStart: date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)

	high, low := snap.Assignments[0], snap.Assignments[1]
	assert.Equal(t, *high.StartDate, *low.StartDate,
		"priority orders consideration only; abundant capacity schedules both at once")
}

func TestRun_ReadyDateDelaysStart(t *testing.T) {
	ready := date(2025, time.July, 1)
	a := makeAssignment("work", "alpha", "dev", 1, 8, 1)
	a.ReadyDate = &ready
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("dev", 2)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{a},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)
	assert.Equal(t, ready, *a.StartDate)
}

func TestRun_WeekendReadyDateStartsMonday(t *testing.T) {
	ready := date(2025, time.June, 21) // Saturday
	a := makeAssignment("work", "alpha", "dev", 1, 8, 1)
	a.ReadyDate = &ready
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("dev", 2)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{a},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.June, 23), *a.StartDate)
}

func TestRun_TierTableDerivesHours(t *testing.T) {
	team := makeTeam("dev", 4)
	team.TierHours = map[int]float64{1: 8, 2: 40}
	a := makeAssignment("work", "alpha", "dev", 1, 0, 2)
	a.Tier = 2
	snap := &Snapshot{
		Teams:       teamMap(team),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{a},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)
	// Tier 2 is 40h per person x 2 people = 80h; 2 people at 8h/day = 5 days.
	assert.Equal(t, date(2025, time.June, 20), *a.EndDate)
}

func TestRun_ZeroHoursStillOccupiesOneDay(t *testing.T) {
	a := makeAssignment("work", "alpha", "dev", 1, 0, 1)
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("dev", 1)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{a},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)
	assert.Equal(t, *a.StartDate, *a.EndDate)
}

func TestRun_ZeroCapacityTeamSkipsItems(t *testing.T) {
	snap := &Snapshot{
		Teams:    teamMap(makeTeam("ghost", 0), makeTeam("dev", 2)),
		Projects: projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{
			makeAssignment("ghost-work", "alpha", "ghost", 1, 16, 1),
			makeAssignment("dev-work", "alpha", "dev", 2, 16, 1),
		},
		RunStart: date(2025, time.June, 16),
	}

	res, err := Run(snap, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.SkipZeroCapacity, res.Unscheduled["ghost-work"])
	assert.False(t, snap.Assignments[0].Dated())
	assert.True(t, snap.Assignments[1].Dated(), "skip does not gate the rest of the project")
}

func TestRun_HeadcountOverTotalSkips(t *testing.T) {
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("dev", 2)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{makeAssignment("work", "alpha", "dev", 1, 16, 3)},
		RunStart:    date(2025, time.June, 16),
	}

	res, err := Run(snap, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SkipHeadcountTooHigh, res.Unscheduled["work"])
}

func TestRun_UnknownReferencesSkip(t *testing.T) {
	snap := &Snapshot{
		Teams:    teamMap(makeTeam("dev", 2)),
		Projects: projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{
			makeAssignment("no-project", "nope", "dev", 1, 8, 1),
			makeAssignment("no-team", "alpha", "nope", 1, 8, 1),
		},
		RunStart: date(2025, time.June, 16),
	}

	res, err := Run(snap, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SkipUnknownProject, res.Unscheduled["no-project"])
	assert.Equal(t, domain.SkipUnknownTeam, res.Unscheduled["no-team"])
}

func TestRun_NegativeHeadcountFailsFast(t *testing.T) {
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("dev", -1), makeTeam("ok", 2)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{makeAssignment("work", "alpha", "ok", 1, 8, 1)},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeHeadcount)
	assert.False(t, snap.Assignments[0].Dated(), "nothing is processed after a config error")
}

func TestRun_SearchExhaustionPropagates(t *testing.T) {
	team := makeTeam("dev", 2)
	team.BusyHeadcount = 2
	snap := &Snapshot{
		Teams:       teamMap(team),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{makeAssignment("work", "alpha", "dev", 1, 8, 1)},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSearchExhausted)
}

func TestRun_AdversarialHoursStayInsideCalendarBounds(t *testing.T) {
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("solo", 1)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{makeAssignment("monster", "alpha", "solo", 1, 100_000, 1)},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)

	a := snap.Assignments[0]
	assert.False(t, a.EndDate.Before(*a.StartDate))
	assert.False(t, a.EndDate.After(calendar.MaxDate))
	assert.False(t, a.StartDate.Before(calendar.MinDate))
}

func TestRun_AbsurdHoursClampAndWarnInsteadOfFailing(t *testing.T) {
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("solo", 1)),
		Projects:    projectMap(makeProject("alpha", 1)),
		Assignments: []*domain.Assignment{makeAssignment("eternal", "alpha", "solo", 1, 1e9, 1)},
		RunStart:    date(2025, time.June, 16),
	}

	res, err := Run(snap, nil)
	require.NoError(t, err)

	a := snap.Assignments[0]
	assert.Equal(t, calendar.MaxDate, *a.EndDate)
	assert.Greater(t, res.ClampWarnings, 0)
}

func TestRun_Deterministic(t *testing.T) {
	first, err := Run(exampleSnapshot(), nil)
	require.NoError(t, err)
	second, err := Run(exampleSnapshot(), nil)
	require.NoError(t, err)

	require.Len(t, second.Assignments, len(first.Assignments))
	for i := range first.Assignments {
		a, b := first.Assignments[i], second.Assignments[i]
		assert.Equal(t, a.ID, b.ID)
		assert.Equal(t, *a.StartDate, *b.StartDate)
		assert.Equal(t, *a.EndDate, *b.EndDate)
	}
	assert.Equal(t, first.Unscheduled, second.Unscheduled)
	assert.Equal(t, first.Summaries, second.Summaries)
}

func TestRun_InactiveProjectAssignmentsAreCallerFiltered(t *testing.T) {
	// The engine schedules whatever the snapshot carries; loaders exclude
	// paused/done projects by status before building it. A paused project
	// present in the snapshot still schedules, proving status filtering is
	// an explicit load-time decision rather than hidden engine behavior.
	paused := makeProject("paused", 1)
	paused.Status = domain.ProjectPaused
	snap := &Snapshot{
		Teams:       teamMap(makeTeam("dev", 2)),
		Projects:    projectMap(paused),
		Assignments: []*domain.Assignment{makeAssignment("work", "paused", "dev", 1, 8, 1)},
		RunStart:    date(2025, time.June, 16),
	}

	_, err := Run(snap, nil)
	require.NoError(t, err)
	assert.True(t, snap.Assignments[0].Dated())
}
