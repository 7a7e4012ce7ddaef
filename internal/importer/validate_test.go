package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *ImportSchema {
	ready := "2025-06-16"
	return &ImportSchema{
		Teams: []TeamImport{
			{Ref: "arch", Name: "Arch", TotalHeadcount: 2, TierHours: map[string]float64{"1": 8}},
		},
		Projects: []ProjectImport{
			{Ref: "alpha", ShortID: "ALPHA", Name: "Alpha", Priority: 1},
		},
		Assignments: []AssignmentImport{
			{ProjectRef: "alpha", TeamRef: "arch", Phase: "Design", PhaseOrder: 1, Headcount: 1, HoursOverride: 16, ReadyDate: &ready},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validSchema()))
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := validSchema()
	schema.Teams[0].TotalHeadcount = -1
	schema.Projects[0].Status = "halted"
	schema.Assignments[0].TeamRef = "nope"
	schema.Assignments[0].Headcount = 0

	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 4)
}

func TestValidateImportSchema_DuplicateRefs(t *testing.T) {
	schema := validSchema()
	schema.Teams = append(schema.Teams, TeamImport{Ref: "arch", Name: "Arch 2", TotalHeadcount: 1})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicated")
}

func TestValidateImportSchema_BadDates(t *testing.T) {
	schema := validSchema()
	bad := "16/06/2025"
	schema.Assignments[0].ReadyDate = &bad

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "ready_date")
}

func TestConvert_ResolvesRefsAndTiers(t *testing.T) {
	gen := Convert(validSchema())

	require.Len(t, gen.Teams, 1)
	require.Len(t, gen.Projects, 1)
	require.Len(t, gen.Assignments, 1)

	a := gen.Assignments[0]
	assert.Equal(t, gen.Teams[0].ID, a.TeamID)
	assert.Equal(t, gen.Projects[0].ID, a.ProjectID)
	assert.Equal(t, map[int]float64{1: 8}, gen.Teams[0].TierHours)
	require.NotNil(t, a.ReadyDate)
	assert.Equal(t, "2025-06-16", a.ReadyDate.Format("2006-01-02"))
}
