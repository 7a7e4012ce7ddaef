package contract

import "time"

// PlanRequest asks for a full scheduling run over the stored portfolio.
type PlanRequest struct {
	// RunStart overrides the reference "today"; nil means the current day.
	RunStart *time.Time

	// Persist writes computed dates back to storage after the run.
	Persist bool
}

// PlanAssignmentView is one assignment with its computed window, in snapshot
// input order. Start and End are nil when the item was skipped.
type PlanAssignmentView struct {
	AssignmentID string  `json:"assignment_id"`
	ProjectID    string  `json:"project_id"`
	ProjectName  string  `json:"project_name"`
	TeamID       string  `json:"team_id"`
	TeamName     string  `json:"team_name"`
	Phase        string  `json:"phase"`
	PhaseOrder   int     `json:"phase_order"`
	Headcount    float64 `json:"headcount"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
	SkipReason   string  `json:"skip_reason,omitempty"`
}

// ProjectSummaryView is the per-project rollup.
type ProjectSummaryView struct {
	ProjectID string  `json:"project_id"`
	ShortID   string  `json:"short_id,omitempty"`
	Name      string  `json:"name"`
	State     string  `json:"state"`
	Start     *string `json:"start,omitempty"`
	End       *string `json:"end,omitempty"`
}

// PlanResponse is the full outcome of one run. Identical portfolios produce
// byte-identical encodings; the fingerprint hashes the canonical encoding and
// backs saved-plan drift detection.
type PlanResponse struct {
	RunStart      string               `json:"run_start"`
	Assignments   []PlanAssignmentView `json:"assignments"`
	Summaries     []ProjectSummaryView `json:"summaries"`
	ClampWarnings int                  `json:"clamp_warnings,omitempty"`
	Fingerprint   string               `json:"fingerprint,omitempty"`
}

// PlanDrift reports whether the current schedule diverged from a saved plan.
type PlanDrift struct {
	Label            string `json:"label"`
	SavedAt          string `json:"saved_at"`
	SavedFingerprint string `json:"saved_fingerprint"`
	PlanFingerprint  string `json:"plan_fingerprint"`
	Drifted          bool   `json:"drifted"`
}
