package fetch

import "errors"

// ErrFetch marks a failure to load one pitcher's rows. The whole cohort
// fetch fails with it.
var ErrFetch = errors.New("fetch pitcher summary")

// ErrNoProvider is returned when a pool is built without a provider.
var ErrNoProvider = errors.New("no summary provider")
