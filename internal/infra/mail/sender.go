package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers owner notifications over SMTP. It implements the
// Notifier contract used by the lead use cases and the queue worker.
type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string // the site owner's inbox
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) Send(title, content string) error {
	if s.Host == "" || s.To == "" {
		return fmt.Errorf("email sender not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", content)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
