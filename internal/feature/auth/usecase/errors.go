// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTokenNotFound is returned when no user holds the given single-use token.
	// A consumed token is cleared from the record, so re-submitting it fails with this error.
	ErrTokenNotFound = errors.New("token not found")

	// ErrAccountNotConfirmed is returned on login before the password is ever
	// checked, so an unconfirmed account never leaks whether the password was correct.
	ErrAccountNotConfirmed = errors.New("account has not been confirmed")

	// ErrIncorrectPassword is returned when password verification fails.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrEmailTaken is returned when a profile update targets an email owned by another user.
	ErrEmailTaken = errors.New("email already registered by another user")
)
