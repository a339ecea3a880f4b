package service

import "errors"

var (
	// ErrDuplicateUser is returned when a signup collides with an existing
	// username or email.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned on login when the user is unknown or
	// the password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrEmptyMessage is returned when a chat request carries no text after
	// trimming whitespace.
	ErrEmptyMessage = errors.New("message is empty")
)
