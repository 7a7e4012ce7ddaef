package scheduler

import (
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
)

// HoursPerPersonDay is the working hours one person contributes per business
// day when converting effort to duration.
const HoursPerPersonDay = 8.0

// Snapshot is the full in-memory input to one scheduling run. The engine
// never loads anything itself; the caller assembles the snapshot and owns
// the result.
type Snapshot struct {
	Teams       map[string]*domain.Team
	Projects    map[string]*domain.Project
	Assignments []*domain.Assignment

	// RunStart is the reference "today": no assignment starts before it.
	RunStart time.Time
}

// Result is the outcome of one run. Assignments is the input slice, in input
// order, with computed dates recorded on the dated items. The engine holds no
// reference to the result after returning.
type Result struct {
	Assignments []*domain.Assignment

	// Unscheduled maps assignment ID to the reason it was left undated.
	Unscheduled map[string]domain.SkipReason

	// ClampWarnings counts dates pulled back into the representable range.
	ClampWarnings int

	Summaries []ProjectSummary
}

// ProjectSummary is the per-project rollup over dated assignments.
type ProjectSummary struct {
	ProjectID string
	ShortID   string
	Name      string

	// State is "not started", "done", the name of the phase containing the
	// reference date, or "waiting" for a gap between phases.
	State string

	Start *time.Time
	End   *time.Time
}
