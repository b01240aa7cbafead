package jobs

import "errors"

var (
	ErrNotFound       = errors.New("Job not found")
	ErrForbidden      = errors.New("Job is not owned by this farmer")
	ErrAlreadyClosed  = errors.New("Job is already closed")
	ErrFieldsRequired = errors.New("Title and wage are required")
)
