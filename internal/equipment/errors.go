package equipment

import "errors"

var (
	ErrNotFound       = errors.New("Equipment not found")
	ErrForbidden      = errors.New("Equipment is not owned by this seller")
	ErrInvalidStatus  = errors.New("Status must be Available or Paused")
	ErrFieldsRequired = errors.New("Name and price are required")
)
