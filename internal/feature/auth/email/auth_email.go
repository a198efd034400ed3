// Package email composes the auth notification emails.
package email

import (
	"fmt"

	"cashtrackr_backend/internal/feature/auth/usecase"
	"cashtrackr_backend/internal/platform/mail"
)

// AuthEmail builds and delivers the confirmation and password-reset emails.
type AuthEmail struct {
	mailer      mail.Mailer
	frontendURL string
}

// Compile-time check that AuthEmail implements the usecase's EmailSender.
var _ usecase.EmailSender = (*AuthEmail)(nil)

// NewAuthEmail creates an AuthEmail delivering through the given mailer.
// frontendURL is the base URL of the web app the links point at.
func NewAuthEmail(mailer mail.Mailer, frontendURL string) *AuthEmail {
	return &AuthEmail{mailer: mailer, frontendURL: frontendURL}
}

// SendConfirmationEmail delivers the account confirmation code.
func (e *AuthEmail) SendConfirmationEmail(name, email, token string) error {
	body := fmt.Sprintf(`<p>Hola: %s, has creado tu cuenta en CashTrackr, ya esta casi lista</p>
		<p>Visita el siguiente enlace:</p>
		<a href="%s/auth/confirm-account">Confirmar cuenta</a>
		<p>e ingresa el código: <b>%s</b></p>`, name, e.frontendURL, token)

	return e.mailer.Send(email, "CashTrackr - Confirma tu cuenta", body)
}

// SendPasswordResetToken delivers the password reset code.
func (e *AuthEmail) SendPasswordResetToken(name, email, token string) error {
	body := fmt.Sprintf(`<p>Hola: %s, has solicitado reestablecer tu password</p>
		<p>Visita el siguiente enlace:</p>
		<a href="%s/auth/new-password">Reestablecer Password</a>
		<p>e ingresa el código: <b>%s</b></p>`, name, e.frontendURL, token)

	return e.mailer.Send(email, "CashTrackr - Reestablece tu Password", body)
}
