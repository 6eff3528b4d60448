package email

import (
	"gopkg.in/gomail.v2"
)

// SMTPNotifier delivers notifications over SMTP.
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

func NewSMTPNotifier(host string, port int, username, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

func (s *SMTPNotifier) Notify(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}
