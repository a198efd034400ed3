package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"cashtrackr_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email's unique index is violated.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByToken retrieves the user holding the given single-use token,
	// or ErrTokenNotFound.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// Update persists changes to an existing user. It returns ErrEmailAlreadyExists
	// when an email change violates the unique index.
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator creates signed session tokens.
type TokenGenerator interface {
	GenerateToken(userID uint) (string, error)
}

// EmailSender delivers the auth notification emails. Sends are best effort:
// a failed delivery is logged and never rolls back the triggering operation.
type EmailSender interface {
	SendConfirmationEmail(name, email, token string) error
	SendPasswordResetToken(name, email, token string) error
}

// AuthUsecase implements the authentication business logic.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	emails EmailSender
}

// NewAuthUsecase creates a new AuthUsecase with its collaborators.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, emails EmailSender) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, emails: emails}
}

// hashPassword hashes a plaintext password with bcrypt. DefaultCost is 10,
// matching the stored hashes.
func hashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// verifyPassword reports whether plaintext matches the stored hash.
// It fails closed: any comparison error counts as a mismatch.
func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Register creates an unconfirmed user with a fresh confirmation token and
// dispatches the confirmation email. The created user is returned so callers
// with a legitimate need (test harnesses) can read the token; HTTP handlers
// never serialize it.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Token:    &token,
	}
	// The unique index is authoritative; the FindByEmail above only narrows
	// the race window.
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := u.emails.SendConfirmationEmail(user.Name, user.Email, token); err != nil {
		slog.Warn("failed to send confirmation email", "error", err, "email", user.Email)
	}

	return user, nil
}

// ConfirmAccount consumes a confirmation token, marking the account confirmed.
// Re-submitting a consumed token fails with ErrTokenNotFound.
func (u *AuthUsecase) ConfirmAccount(ctx context.Context, token string) error {
	user, err := u.users.FindByToken(ctx, token)
	if err != nil {
		return err
	}

	user.Confirmed = true
	user.Token = nil
	return u.users.Update(ctx, user)
}

// Login authenticates a user and returns a signed session token.
// Checks run in a fixed order: existence, confirmation, password. The
// confirmation check precedes password verification so an unconfirmed
// account never learns whether its password was correct.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !user.Confirmed {
		return "", ErrAccountNotConfirmed
	}

	if !verifyPassword(password, user.Password) {
		return "", ErrIncorrectPassword
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ForgotPassword stores a fresh reset token on the user, overwriting any
// outstanding token, and dispatches the reset email.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := generateToken()
	if err != nil {
		return err
	}
	user.Token = &token
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	if err := u.emails.SendPasswordResetToken(user.Name, user.Email, token); err != nil {
		slog.Warn("failed to send password reset email", "error", err, "email", user.Email)
	}

	return nil
}

// ValidateResetToken checks that a reset token is outstanding without
// consuming it. The client uses this to gate display of the new-password form.
func (u *AuthUsecase) ValidateResetToken(ctx context.Context, token string) error {
	_, err := u.users.FindByToken(ctx, token)
	return err
}

// ResetPassword consumes a reset token and stores the new password.
func (u *AuthUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := u.users.FindByToken(ctx, token)
	if err != nil {
		return err
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.Token = nil
	return u.users.Update(ctx, user)
}

// UpdatePassword changes an authenticated user's password after verifying
// the current one. Existing session tokens stay valid.
func (u *AuthUsecase) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !verifyPassword(currentPassword, user.Password) {
		return ErrIncorrectPassword
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return u.users.Update(ctx, user)
}

// CheckPassword verifies an authenticated user's password without mutation.
// Destructive-action confirmations in the front end rely on it.
func (u *AuthUsecase) CheckPassword(ctx context.Context, userID uint, password string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !verifyPassword(password, user.Password) {
		return ErrIncorrectPassword
	}
	return nil
}

// UpdateProfile changes an authenticated user's name and email.
// An email owned by a different user is rejected with ErrEmailTaken.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uint, name, email string) error {
	if existing, err := u.users.FindByEmail(ctx, email); err == nil && existing.ID != userID {
		return ErrEmailTaken
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Name = name
	user.Email = email
	if err := u.users.Update(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
