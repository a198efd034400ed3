package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer captures the last message handed to Send.
type recordingMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	return m.err
}

func TestAuthEmail_SendConfirmationEmail(t *testing.T) {
	mailer := &recordingMailer{}
	sender := NewAuthEmail(mailer, "http://localhost:3000")

	err := sender.SendConfirmationEmail("Juan", "juan@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "juan@example.com", mailer.to)
	assert.Equal(t, "CashTrackr - Confirma tu cuenta", mailer.subject)
	assert.Contains(t, mailer.body, "Juan")
	assert.Contains(t, mailer.body, "123456")
	assert.Contains(t, mailer.body, "http://localhost:3000/auth/confirm-account")
}

func TestAuthEmail_SendPasswordResetToken(t *testing.T) {
	mailer := &recordingMailer{}
	sender := NewAuthEmail(mailer, "http://localhost:3000")

	err := sender.SendPasswordResetToken("Ana", "ana@example.com", "654321")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", mailer.to)
	assert.Equal(t, "CashTrackr - Reestablece tu Password", mailer.subject)
	assert.Contains(t, mailer.body, "Ana")
	assert.Contains(t, mailer.body, "654321")
	assert.Contains(t, mailer.body, "http://localhost:3000/auth/new-password")
}
