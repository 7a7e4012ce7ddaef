package service

import (
	"context"
	"testing"
	"time"

	"github.com/crewplanhq/crewplan/internal/contract"
	"github.com/crewplanhq/crewplan/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Teams: []importer.TeamImport{
			{Ref: "arch", Name: "Architecture", TotalHeadcount: 2, TierHours: map[string]float64{"1": 40}},
			{Ref: "model", Name: "Modeling", TotalHeadcount: 4},
		},
		Projects: []importer.ProjectImport{
			{Ref: "alpha", ShortID: "ALPHA", Name: "Alpha", Priority: 1},
			{Ref: "beta", Name: "Beta", Priority: 2},
		},
		Assignments: []importer.AssignmentImport{
			{ProjectRef: "alpha", TeamRef: "arch", Phase: "Design", PhaseOrder: 1, Tier: 1, Headcount: 1},
			{ProjectRef: "alpha", TeamRef: "model", Phase: "Build", PhaseOrder: 2, Headcount: 2, EstimateHours: 64},
			{ProjectRef: "beta", TeamRef: "arch", Phase: "Design", PhaseOrder: 1, Headcount: 1, HoursOverride: 16},
		},
	}
}

func TestImportService_ImportFromSchema(t *testing.T) {
	teams, projects, assignments, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewImportService(uow)
	result, err := svc.ImportFromSchema(ctx, snapshotSchema())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TeamCount)
	assert.Equal(t, 2, result.ProjectCount)
	assert.Equal(t, 3, result.AssignmentCount)

	storedTeams, err := teams.List(ctx)
	require.NoError(t, err)
	assert.Len(t, storedTeams, 2)

	storedProjects, err := projects.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, storedProjects, 2)

	rows, err := assignments.ListSchedulable(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestImportService_ValidationFailureImportsNothing(t *testing.T) {
	teams, _, _, _, uow := setupRepos(t)
	ctx := context.Background()

	schema := snapshotSchema()
	schema.Assignments[0].TeamRef = "missing"

	svc := NewImportService(uow)
	_, err := svc.ImportFromSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")

	storedTeams, err := teams.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, storedTeams, "failed import must not leave partial data")
}

func TestImportService_RollsBackOnMidTransactionFailure(t *testing.T) {
	teams, projects, _, _, uow := setupRepos(t)
	ctx := context.Background()

	schema := snapshotSchema()
	// Duplicate refs are caught by validation, so force a storage-level
	// conflict instead: two teams with the same name violate the unique
	// name constraint.
	schema.Teams[1].Name = schema.Teams[0].Name
	schema.Teams[1].Ref = "arch2"

	svc := NewImportService(uow)
	_, err := svc.ImportFromSchema(ctx, schema)
	require.Error(t, err)

	storedTeams, err := teams.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, storedTeams)

	storedProjects, err := projects.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, storedProjects)
}

func TestImportService_ThenPlanRun(t *testing.T) {
	teams, projects, assignments, plans, uow := setupRepos(t)
	ctx := context.Background()

	_, err := NewImportService(uow).ImportFromSchema(ctx, snapshotSchema())
	require.NoError(t, err)

	svc := NewPlanService(teams, projects, assignments, plans, uow, nil)
	monday := date(2025, time.June, 16)
	resp, err := svc.Run(ctx, contract.PlanRequest{RunStart: &monday})
	require.NoError(t, err)

	assert.Len(t, resp.Assignments, 3)
	for _, v := range resp.Assignments {
		assert.Empty(t, v.SkipReason)
		assert.NotNil(t, v.Start)
	}
}
