package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when a lookup by id, email or index key misses.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when registering an email that already resolves to a user.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCredentials is returned by login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled is returned by login when the user is not active.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrInvalidToken is returned when a bearer token is tampered with, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidInput is returned when a request passes decoding but breaks a domain rule.
	ErrInvalidInput = errors.New("invalid input")
)
