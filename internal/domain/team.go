package domain

import "time"

// Team is a pool of interchangeable people with a fixed total headcount.
// Headcount committed during a scheduling run lives in the run's capacity
// tracker, never on the Team record; BusyHeadcount covers people committed
// outside the planning scope (support rotations, other departments).
type Team struct {
	ID   string
	Name string

	// TotalHeadcount is the full size of the team. Fractional values model
	// part-time members. A negative value is a configuration error that
	// aborts a scheduling run; zero is a valid no-op destination.
	TotalHeadcount float64

	// BusyHeadcount is pre-committed on every day unconditionally.
	BusyHeadcount float64

	// TierHours maps a complexity tier to the hours of work one person at
	// that tier absorbs for a single assignment.
	TierHours map[int]float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursForTier returns the per-person hours for the given tier, or 0 when the
// team has no entry for it.
func (t *Team) HoursForTier(tier int) float64 {
	if t.TierHours == nil {
		return 0
	}
	return t.TierHours[tier]
}
