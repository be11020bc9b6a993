package scoring

import "errors"

// ErrInsufficientCohort is returned when fewer than two pitchers in a cohort
// have pitch data, so no cohort statistics can be computed.
var ErrInsufficientCohort = errors.New("insufficient cohort")

const minCohortSize = 2
