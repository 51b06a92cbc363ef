package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
)
