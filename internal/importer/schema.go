package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a planning snapshot
// import: the full set of teams, projects, and assignments in one file.
type ImportSchema struct {
	Teams       []TeamImport       `json:"teams"`
	Projects    []ProjectImport    `json:"projects"`
	Assignments []AssignmentImport `json:"assignments"`
}

// TeamImport defines a team in the import file. TierHours maps tier level to
// hours of work one person at that tier absorbs.
type TeamImport struct {
	Ref            string             `json:"ref"`
	Name           string             `json:"name"`
	TotalHeadcount float64            `json:"total_headcount"`
	BusyHeadcount  float64            `json:"busy_headcount,omitempty"`
	TierHours      map[string]float64 `json:"tier_hours,omitempty"`
}

// ProjectImport defines a project in the import file.
type ProjectImport struct {
	Ref        string  `json:"ref"`
	ShortID    string  `json:"short_id,omitempty"`
	Name       string  `json:"name"`
	Priority   int     `json:"priority"`
	Status     string  `json:"status,omitempty"`
	TargetDate *string `json:"target_date,omitempty"`
}

// AssignmentImport defines an assignment in the import file, referencing a
// team and a project by their refs.
type AssignmentImport struct {
	ProjectRef    string  `json:"project_ref"`
	TeamRef       string  `json:"team_ref"`
	Phase         string  `json:"phase"`
	PhaseOrder    int     `json:"phase_order"`
	Tier          int     `json:"tier,omitempty"`
	Headcount     float64 `json:"headcount"`
	HoursOverride float64 `json:"hours_override,omitempty"`
	EstimateHours float64 `json:"estimate_hours,omitempty"`
	ReadyDate     *string `json:"ready_date,omitempty"`
}

// LoadImportSchema reads and parses a planning snapshot JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
