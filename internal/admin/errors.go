package admin

import "errors"

var (
	ErrUnauthorized   = errors.New("Invalid admin credentials")
	ErrInvalidTable   = errors.New("Invalid table name")
	ErrRecordNotFound = errors.New("Record not found")
	ErrCredsRequired  = errors.New("Username and password are required")
)
