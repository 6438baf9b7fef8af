// Package mail dispatches OTP verification emails over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"perpus/internal/config"
	"perpus/internal/logger"
)

const otpSubject = "Welcome Onboard!"

const otpBodyTemplate = `<html>
  <body>
    <p>Terima kasih telah mendaftar di Perpustakaan API.</p>
    <p>Kode verifikasi anda: <b>%06d</b></p>
    <p>Masukkan kode ini pada endpoint otp-confirmation untuk mengaktifkan akun.</p>
  </body>
</html>`

// Mailer sends account verification codes.
type Mailer interface {
	SendOtp(to string, code int) error
}

// SMTPMailer delivers mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a Mailer from SMTP configuration. When no host is
// configured it returns a LogMailer so development setups work without a
// mail relay.
func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		return &LogMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendOtp sends the verification code to the given address.
func (m *SMTPMailer) SendOtp(to string, code int) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", otpSubject)
	msg.SetBody("text/html", fmt.Sprintf(otpBodyTemplate, code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

// LogMailer writes the code to the log instead of sending mail.
type LogMailer struct{}

// SendOtp logs the verification code.
func (m *LogMailer) SendOtp(to string, code int) error {
	log := logger.Get()
	log.Info().Str("to", to).Int("otp", code).Msg("smtp disabled, otp not emailed")
	return nil
}
