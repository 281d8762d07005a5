package services

import "errors"

// Error variables
var (
	ErrDuplicateAccount   = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("incorrect username/email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrProfileNotFound    = errors.New("profile not found")
)
