package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHours_OverrideWins(t *testing.T) {
	team := &Team{TierHours: map[int]float64{2: 40}}
	a := &Assignment{HoursOverride: 100, EstimateHours: 10, Tier: 2, Headcount: 2}

	assert.Equal(t, 100.0, ResolveHours(a, team))
}

func TestResolveHours_TierTableScalesByHeadcount(t *testing.T) {
	team := &Team{TierHours: map[int]float64{2: 40}}
	a := &Assignment{EstimateHours: 10, Tier: 2, Headcount: 2}

	assert.Equal(t, 80.0, ResolveHours(a, team))
}

func TestResolveHours_FallsBackToEstimate(t *testing.T) {
	team := &Team{TierHours: map[int]float64{2: 40}}
	a := &Assignment{EstimateHours: 10, Tier: 5, Headcount: 2}

	assert.Equal(t, 10.0, ResolveHours(a, team), "unknown tier falls through to the raw estimate")
}

func TestResolveHours_NoSourceYieldsZero(t *testing.T) {
	a := &Assignment{Tier: 1, Headcount: 1}

	assert.Equal(t, 0.0, ResolveHours(a, &Team{}))
}

func TestValidateShortID(t *testing.T) {
	assert.Error(t, (&Project{}).ValidateShortID())
	assert.Error(t, (&Project{ShortID: "alpha"}).ValidateShortID(), "lowercase rejected")
	assert.NoError(t, (&Project{ShortID: "ALPHA"}).ValidateShortID())
	assert.NoError(t, (&Project{ShortID: "BE02"}).ValidateShortID())
}

func TestDisplayID(t *testing.T) {
	assert.Equal(t, "ALPHA", (&Project{ID: "0123456789", ShortID: "ALPHA"}).DisplayID())
	assert.Equal(t, "01234567", (&Project{ID: "0123456789"}).DisplayID())
}
