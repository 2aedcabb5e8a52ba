package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailSender dispatches a drafted outreach email over SMTP. It is the
// optional direct-send path; the primary path hands the operator a
// mailto: link and lets the native client take over.
type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = user
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// Send delivers the draft as plain text. The body is sent exactly as
// generated; the operator reviewed it before dispatch.
func (s *EmailSender) Send(to, subject, body string) error {
	if s.Host == "" {
		return fmt.Errorf("smtp is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
