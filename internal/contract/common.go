// Package contract defines the request/response shapes exchanged between the
// service layer and its callers (CLI, saved-plan comparison). All dates cross
// this boundary as YYYY-MM-DD strings so encoded responses are stable.
package contract

import "time"

const DateLayout = "2006-01-02"

// FormatDate renders a date pointer for a response, nil-safe.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
