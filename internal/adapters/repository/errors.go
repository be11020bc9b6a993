package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotFound  = errors.New("pitcher not found")
	ErrEmptyPath = errors.New("empty database path")
)
