package auth

import "errors"

var (
	ErrPasswordRequired  = errors.New("Password is required")
	ErrIncorrectPassword = errors.New("Incorrect Password")
	ErrNotConfigured     = errors.New("Missing ADMIN_PASSWORD")
	ErrNotAuthenticated  = errors.New("Not authenticated")
)
