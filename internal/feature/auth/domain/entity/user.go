// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It holds the credentials and the single-use token driving the
// confirmation and password-reset flows.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in the front end.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext.
	Password string `gorm:"size:255;not null"`

	// Confirmed is false until the account's email has been confirmed.
	Confirmed bool `gorm:"not null;default:false"`

	// Token holds the pending confirmation code after registration, or a
	// password-reset code after a reset request. It is cleared (nil) once
	// consumed. Both flows share this column.
	Token *string `gorm:"size:6;index"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
