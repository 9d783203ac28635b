package jobs

import (
	"errors"

	"jobboard-backend/internal/shared/storage/dberr"
)

var (
	// ErrNotFound indicates no job matched the identifier.
	ErrNotFound = dberr.ErrNotFound

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
