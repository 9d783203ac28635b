package resumes

import (
	"errors"

	"jobboard-backend/internal/shared/storage/dberr"
)

var (
	// ErrNotFound indicates no resume matched the lookup.
	ErrNotFound = dberr.ErrNotFound

	// ErrMultipleRows indicates a user lookup matched more than one live resume.
	ErrMultipleRows = dberr.ErrMultipleRows

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
