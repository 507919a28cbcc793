package domain

import "errors"

// Auth error taxonomy. Handlers and the HTTP error handler map these to status
// codes; messages shown to clients are deliberately generic so that login and
// token failures reveal nothing about which check failed.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid e-mail or password combination")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has expired")
)
