package auth

import "errors"

var (
	ErrFieldsRequired     = errors.New("Name, email, password and role are required")
	ErrInvalidEmail       = errors.New("Invalid email address")
	ErrWeakPassword       = errors.New("Password must be at least 8 characters with a letter and a number")
	ErrInvalidName        = errors.New("Invalid name")
	ErrInvalidRole        = errors.New("Role must be FARMER, SELLER or LABOURER")
	ErrDuplicateEmail     = errors.New("An account with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrRoleMismatch       = errors.New("Account is not registered under the selected role")
	ErrNotAuthenticated   = errors.New("Not authenticated")
)
