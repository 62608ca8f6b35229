// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailInUse is returned when attempting to register with an email that already exists.
	ErrEmailInUse = errors.New("Email in use")

	// ErrInvalidCredentials is returned on login failure. It is deliberately
	// the same for an unknown email and a wrong password so that accounts
	// cannot be enumerated.
	ErrInvalidCredentials = errors.New("Email or password is wrong")
)
