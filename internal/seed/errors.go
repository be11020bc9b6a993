package seed

import "errors"

// Error constants.
var (
	ErrNoRosters     = errors.New("no roster names to seed")
	ErrInvalidConfig = errors.New("invalid seed config")
)
