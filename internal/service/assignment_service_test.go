package service

import (
	"context"
	"testing"

	"github.com/crewplanhq/crewplan/internal/domain"
	"github.com/crewplanhq/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentService_Create_ChecksReferences(t *testing.T) {
	teams, projects, assignments, _, _ := setupRepos(t)
	ctx := context.Background()

	team := testutil.MakeTeam("Crew", 2)
	require.NoError(t, teams.Create(ctx, team))
	proj := testutil.MakeProject("Alpha", 1)
	require.NoError(t, projects.Create(ctx, proj))

	svc := NewAssignmentService(assignments, projects, teams)

	good := &domain.Assignment{
		ProjectID: proj.ID,
		TeamID:    team.ID,
		Phase:     "Design",
		Headcount: 1,
	}
	require.NoError(t, svc.Create(ctx, good))
	assert.NotEmpty(t, good.ID)

	unknownTeam := &domain.Assignment{
		ProjectID: proj.ID,
		TeamID:    "nope",
		Phase:     "Design",
		Headcount: 1,
	}
	assert.Error(t, svc.Create(ctx, unknownTeam))

	zeroHeadcount := &domain.Assignment{
		ProjectID: proj.ID,
		TeamID:    team.ID,
		Phase:     "Design",
	}
	assert.Error(t, svc.Create(ctx, zeroHeadcount))
}
