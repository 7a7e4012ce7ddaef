package contract

import "time"

// StatusRequest asks for project summaries derived from the stored schedule,
// without re-running the scheduler.
type StatusRequest struct {
	// Now overrides the reference date; nil means the current day.
	Now *time.Time
}

type StatusResponse struct {
	Reference string               `json:"reference"`
	Projects  []ProjectSummaryView `json:"projects"`
}
