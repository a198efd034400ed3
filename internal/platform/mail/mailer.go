// Package mail provides SMTP delivery for transactional emails.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"cashtrackr_backend/internal/platform/config"
)

// Mailer sends a single HTML email. Delivery is best effort; callers decide
// whether a failure is fatal.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// smtpMailer implements Mailer on top of gomail.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ Mailer = (*smtpMailer)(nil)

// NewSMTPMailer creates a Mailer using the SMTP settings from the configuration.
func NewSMTPMailer(cfg config.Config) *smtpMailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

// Send dials the SMTP server and delivers the message.
func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
