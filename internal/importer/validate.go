package importer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/crewplanhq/crewplan/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	teamRefs := make(map[string]bool)
	errs = append(errs, validateTeams(schema.Teams, teamRefs)...)

	projectRefs := make(map[string]bool)
	errs = append(errs, validateProjects(schema.Projects, projectRefs)...)

	errs = append(errs, validateAssignments(schema.Assignments, teamRefs, projectRefs)...)

	return errs
}

func validateTeams(teams []TeamImport, refs map[string]bool) []error {
	var errs []error
	for i, t := range teams {
		prefix := fmt.Sprintf("teams[%d]", i)
		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref %q is duplicated", prefix, t.Ref))
		} else {
			refs[t.Ref] = true
		}
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.TotalHeadcount < 0 {
			errs = append(errs, fmt.Errorf("%s.total_headcount must not be negative", prefix))
		}
		if t.BusyHeadcount < 0 {
			errs = append(errs, fmt.Errorf("%s.busy_headcount must not be negative", prefix))
		}
		for tier, hours := range t.TierHours {
			if _, err := strconv.Atoi(tier); err != nil {
				errs = append(errs, fmt.Errorf("%s.tier_hours: tier %q is not an integer", prefix, tier))
			}
			if hours < 0 {
				errs = append(errs, fmt.Errorf("%s.tier_hours[%s] must not be negative", prefix, tier))
			}
		}
	}
	return errs
}

func validateProjects(projects []ProjectImport, refs map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[p.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref %q is duplicated", prefix, p.Ref))
		} else {
			refs[p.Ref] = true
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
		}
		if p.TargetDate != nil {
			if _, err := time.Parse("2006-01-02", *p.TargetDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.target_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *p.TargetDate))
			}
		}
	}
	return errs
}

func validateAssignments(assignments []AssignmentImport, teamRefs, projectRefs map[string]bool) []error {
	var errs []error
	for i, a := range assignments {
		prefix := fmt.Sprintf("assignments[%d]", i)
		if a.ProjectRef == "" {
			errs = append(errs, fmt.Errorf("%s.project_ref is required", prefix))
		} else if !projectRefs[a.ProjectRef] {
			errs = append(errs, fmt.Errorf("%s.project_ref %q does not match any project", prefix, a.ProjectRef))
		}
		if a.TeamRef == "" {
			errs = append(errs, fmt.Errorf("%s.team_ref is required", prefix))
		} else if !teamRefs[a.TeamRef] {
			errs = append(errs, fmt.Errorf("%s.team_ref %q does not match any team", prefix, a.TeamRef))
		}
		if a.Phase == "" {
			errs = append(errs, fmt.Errorf("%s.phase is required", prefix))
		}
		if a.Headcount <= 0 {
			errs = append(errs, fmt.Errorf("%s.headcount must be positive", prefix))
		}
		if a.HoursOverride < 0 || a.EstimateHours < 0 {
			errs = append(errs, fmt.Errorf("%s: hours must not be negative", prefix))
		}
		if a.ReadyDate != nil {
			if _, err := time.Parse("2006-01-02", *a.ReadyDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.ready_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *a.ReadyDate))
			}
		}
	}
	return errs
}
