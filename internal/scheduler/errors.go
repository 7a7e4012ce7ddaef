package scheduler

import "errors"

var (
	// ErrNegativeHeadcount aborts a whole run before any assignment is
	// processed: a team with negative total headcount is a configuration
	// error, not a runtime condition to absorb.
	ErrNegativeHeadcount = errors.New("team has negative total headcount")

	// ErrSearchExhausted is returned when the slot search hits its
	// iteration bound. It signals a modeling error or pathological input
	// for one specific assignment and propagates to the caller; it is
	// never silently skipped.
	ErrSearchExhausted = errors.New("slot search exhausted iteration bound")
)
