package domain

import "time"

// Assignment binds one project to one team for a single phase of work.
// StartDate and EndDate are computed by a scheduling run; once set they are
// final for that run (there is no re-scheduling pass). EndDate is never
// before StartDate.
type Assignment struct {
	ID        string
	ProjectID string
	TeamID    string

	// Phase names the work for display and sequencing within the project
	// (e.g. "Design" before "Build"). PhaseOrder is the sequencing key.
	Phase      string
	PhaseOrder int

	// Tier indexes the team's per-person hours table.
	Tier int

	// Headcount is the number of people required for the full duration.
	// Fractional values (0.5 for part-time) are valid.
	Headcount float64

	// HoursOverride, when nonzero, pins the total effort directly and wins
	// over every derived source. EstimateHours is the raw last-resort
	// estimate. See ResolveHours for the resolution order.
	HoursOverride float64
	EstimateHours float64

	// ReadyDate is the earliest calendar date the work may start,
	// independent of capacity. Nil means no constraint.
	ReadyDate *time.Time

	// Computed by the scheduler. Nil when the assignment was skipped or the
	// run has not happened yet.
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dated reports whether a scheduling run has assigned concrete dates.
func (a *Assignment) Dated() bool {
	return a.StartDate != nil && a.EndDate != nil
}
