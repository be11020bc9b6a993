package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrUnknownCohort = errors.New("unknown cohort")
	ErrNoStore       = errors.New("no pitch store configured")
	ErrNotStarted    = errors.New("service not started")
)
