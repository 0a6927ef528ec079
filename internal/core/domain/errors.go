package domain

import "errors"

var (
	ErrInvalidInput           = errors.New("email and password are required")
	ErrAuthenticationFailed   = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
)
