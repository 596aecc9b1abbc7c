package mailer

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

var _ Mailer = (*SMTPMailer)(nil)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("EMAIL_USER")
	return &SMTPMailer{
		dialer: gomail.NewDialer(os.Getenv("SMTP_HOST"), port, user, os.Getenv("EMAIL_PASS")),
		from:   user,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
