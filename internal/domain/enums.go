package domain

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectPaused   ProjectStatus = "paused"
	ProjectDone     ProjectStatus = "done"
	ProjectArchived ProjectStatus = "archived"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"active": true, "paused": true, "done": true, "archived": true,
}

// SkipReason explains why an assignment was left undated by a scheduling run.
// A skipped assignment is reported in the result, never as a run-level failure.
type SkipReason string

const (
	SkipUnknownProject   SkipReason = "unknown_project"
	SkipUnknownTeam      SkipReason = "unknown_team"
	SkipZeroCapacity     SkipReason = "zero_capacity"
	SkipHeadcountTooHigh SkipReason = "headcount_exceeds_team_total"
)

// Coarse project-level schedule states reported by summaries. A project inside
// its window reports the name of the phase containing the reference date
// instead, falling back to StateWaiting for gaps between phases.
const (
	StateNotStarted = "not started"
	StateWaiting    = "waiting"
	StateDone       = "done"
)
