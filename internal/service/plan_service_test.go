package service

import (
	"context"
	"testing"
	"time"

	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlanService_Run_EndToEnd(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	ctx := context.Background()

	team := testutil.MakeTeam("Architecture", 2)
	require.NoError(t, teams.Create(ctx, team))

	alpha := testutil.MakeProject("Alpha", 1)
	require.NoError(t, projects.Create(ctx, alpha))

	design := testutil.MakeAssignment(alpha.ID, team.ID, "Design", 1, 16, 1)
	build := testutil.MakeAssignment(alpha.ID, team.ID, "Build", 2, 16, 1)
	require.NoError(t, assignments.Create(ctx, design))
	require.NoError(t, assignments.Create(ctx, build))

	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)

	monday := date(2025, time.June, 16)
	resp, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday})
	require.NoError(t, err)

	require.Len(t, resp.Assignments, 2)
	assert.Equal(t, "2025-06-16", resp.RunStart)
	assert.NotEmpty(t, resp.Fingerprint)

	byID := make(map[string]contract.PlanAssignmentView)
	for _, v := range resp.Assignments {
		byID[v.AssignmentID] = v
	}

	dv := byID[design.ID]
	require.NotNil(t, dv.Start)
	assert.Equal(t, "2025-06-16", *dv.Start)
	assert.Equal(t, "2025-06-17", *dv.End)
	assert.Equal(t, "Alpha", dv.ProjectName)
	assert.Equal(t, "Architecture", dv.TeamName)

	bv := byID[build.ID]
	require.NotNil(t, bv.Start, "second phase should start after the first ends")
	assert.Equal(t, "2025-06-18", *bv.Start)
	assert.Equal(t, "2025-06-19", *bv.End)

	require.Len(t, resp.Summaries, 1)
	assert.Equal(t, "Alpha", resp.Summaries[0].Name)
	assert.Equal(t, "2025-06-16", *resp.Summaries[0].Start)
	assert.Equal(t, "2025-06-19", *resp.Summaries[0].End)
}

func TestPlanService_Run_PersistWritesDates(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	ctx := context.Background()

	team := testutil.MakeTeam("Modeling", 1)
	require.NoError(t, teams.Create(ctx, team))
	proj := testutil.MakeProject("Beta", 1)
	require.NoError(t, projects.Create(ctx, proj))
	a := testutil.MakeAssignment(proj.ID, team.ID, "Model", 1, 8, 1)
	require.NoError(t, assignments.Create(ctx, a))

	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)

	monday := date(2025, time.June, 16)
	_, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday, Persist: true})
	require.NoError(t, err)

	stored, err := assignments.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.StartDate)
	require.NotNil(t, stored.EndDate)
	assert.Equal(t, "2025-06-16", stored.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-06-16", stored.EndDate.Format("2006-01-02"))
}

func TestPlanService_Run_HonorsProjectStartHint(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	ctx := context.Background()

	team := testutil.MakeTeam("Crew", 2)
	require.NoError(t, teams.Create(ctx, team))

	proj := testutil.MakeProject("Delta", 1)
	hint := date(2025, time.June, 23)
	proj.StartHint = &hint
	require.NoError(t, projects.Create(ctx, proj))
	a := testutil.MakeAssignment(proj.ID, team.ID, "Design", 1, 8, 1)
	require.NoError(t, assignments.Create(ctx, a))

	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)
	monday := date(2025, time.June, 16)
	resp, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday})
	require.NoError(t, err)

	require.Len(t, resp.Assignments, 1)
	require.NotNil(t, resp.Assignments[0].Start)
	assert.Equal(t, "2025-06-23", *resp.Assignments[0].Start, "work must wait for the project's start hint")
}

func TestPlanService_Run_Deterministic(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	ctx := context.Background()

	team := testutil.MakeTeam("Shared", 1)
	require.NoError(t, teams.Create(ctx, team))
	for i, name := range []string{"One", "Two", "Three"} {
		p := testutil.MakeProject(name, i+1)
		require.NoError(t, projects.Create(ctx, p))
		require.NoError(t, assignments.Create(ctx, testutil.MakeAssignment(p.ID, team.ID, "Work", 1, 24, 1)))
	}

	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)
	monday := date(2025, time.June, 16)

	first, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday})
	require.NoError(t, err)
	second, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday})
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint, "same portfolio must hash identically")
}

func TestPlanService_SaveAndCheck(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	ctx := context.Background()

	team := testutil.MakeTeam("Crew", 2)
	require.NoError(t, teams.Create(ctx, team))
	proj := testutil.MakeProject("Gamma", 1)
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, assignments.Create(ctx, testutil.MakeAssignment(proj.ID, team.ID, "Phase", 1, 40, 1)))

	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)
	monday := date(2025, time.June, 16)

	resp, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday})
	require.NoError(t, err)
	require.NoError(t, svc.Save(ctx, "baseline", resp))

	drift, err := svc.Check(ctx, "baseline")
	require.NoError(t, err)
	assert.False(t, drift.Drifted, "unchanged portfolio should match the saved plan")
	assert.Equal(t, resp.Fingerprint, drift.SavedFingerprint)

	// Changing the portfolio changes the schedule.
	require.NoError(t, assignments.Create(ctx, testutil.MakeAssignment(proj.ID, team.ID, "Extra", 2, 16, 1)))

	drift, err = svc.Check(ctx, "baseline")
	require.NoError(t, err)
	assert.True(t, drift.Drifted)
	assert.NotEqual(t, drift.SavedFingerprint, drift.PlanFingerprint)
}

func TestPlanService_Save_RequiresLabelAndFingerprint(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)
	ctx := context.Background()

	err := svc.Save(ctx, "", &contract.PlanResponse{Fingerprint: "abc"})
	assert.Error(t, err)

	err = svc.Save(ctx, "label", &contract.PlanResponse{})
	assert.Error(t, err)
}
