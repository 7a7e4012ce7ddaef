package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{0,4}$`)

// Project is a named piece of work competing for team capacity. Priority is a
// total order key: lower integer wins, ties broken by input order. Target
// dates are display-only and never constrain the scheduler.
type Project struct {
	ID         string
	ShortID    string
	Name       string
	Priority   int
	Status     ProjectStatus
	StartHint  *time.Time
	TargetDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateShortID checks that ShortID is non-empty and matches the required
// format: 2-6 uppercase letters with up to 4 trailing digits (e.g. ALPHA, BE02).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required (use --id flag)")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 2-6 uppercase letters with up to 4 trailing digits (e.g. ALPHA, BE02)", p.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
