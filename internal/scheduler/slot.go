package scheduler

import (
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
)

// maxSlotIterations bounds the forward search. Each iteration jumps past at
// least one committed block (or one business day), so the bound spans well
// over a year of candidates; exceeding it means the team can structurally
// never satisfy the request or the input is pathological.
const maxSlotIterations = 365

// FindSlot searches forward from earliest for the first window of
// durationDays business days with room for headcount on the team. Candidates
// falling on a weekend are normalized to the next business day.
func FindSlot(tracker *CapacityTracker, teamID string, headcount float64, durationDays int, earliest time.Time) (time.Time, error) {
	candidate := calendar.Midnight(earliest)
	if !calendar.IsBusinessDay(candidate) {
		candidate = calendar.NextBusinessDay(candidate)
	}

	for i := 0; i < maxSlotIterations; i++ {
		if tracker.Fits(teamID, headcount, candidate, durationDays) {
			return candidate, nil
		}

		// Jump to the day after the earliest-ending block overlapping the
		// window; fall back to a single-day step when nothing overlaps
		// (the window fails on busy headcount alone).
		windowEnd := calendar.AddBusinessDays(candidate, durationDays-1)
		if end, ok := tracker.earliestOverlapEnd(teamID, candidate, windowEnd); ok {
			if next := calendar.NextBusinessDay(end); next.After(candidate) {
				candidate = next
				continue
			}
		}
		candidate = calendar.NextBusinessDay(candidate)
	}

	return time.Time{}, fmt.Errorf("team %s: no window of %d days for %.2g people within %d attempts from %s: %w",
		teamID, durationDays, headcount, maxSlotIterations, earliest.Format("2006-01-02"), ErrSearchExhausted)
}
