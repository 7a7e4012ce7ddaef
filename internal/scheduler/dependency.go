package scheduler

import (
	"time"

	"github.com/crewplanhq/crewplan/internal/calendar"
)

// DependencyResolver gates each project's next phase behind the latest
// scheduled end date of its already-placed assignments. One instance lives
// per run, alongside the capacity tracker.
type DependencyResolver struct {
	gates map[string]time.Time
}

func NewDependencyResolver() *DependencyResolver {
	return &DependencyResolver{gates: make(map[string]time.Time)}
}

// EarliestFor returns the earliest date any new work for the project may
// start, absent until the first Advance.
func (r *DependencyResolver) EarliestFor(projectID string) (time.Time, bool) {
	gate, ok := r.gates[projectID]
	return gate, ok
}

// Advance moves the project's gate to the business day after the given end
// date. The gate is monotonic: it never moves earlier.
func (r *DependencyResolver) Advance(projectID string, after time.Time) {
	next := calendar.NextBusinessDay(after)
	if cur, ok := r.gates[projectID]; !ok || next.After(cur) {
		r.gates[projectID] = next
	}
}
