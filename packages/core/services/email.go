package services

import (
	"log"
	"os"
	"strconv"

	"github.com/go-mail/mail/v2"
)

// EmailSender relaie une notification par email quand une adresse SMTP est
// configurée. Le canal durable reste la table notifications : un échec
// d'envoi n'est jamais fatal.
type EmailSender interface {
	SendNotification(to, message string) error
}

// LogEmailSender implémentation qui log les emails (pour développement)
type LogEmailSender struct{}

func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) SendNotification(to, message string) error {
	log.Printf("=== EMAIL SENT ===")
	log.Printf("To: %s", to)
	log.Printf("Subject: Tournament notification")
	log.Printf("Body: %s", message)
	log.Printf("=================")
	return nil
}

// SMTPEmailSender pour l'envoi réel d'emails via SMTP
type SMTPEmailSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPEmailSender() *SMTPEmailSender {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return &SMTPEmailSender{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

func (s *SMTPEmailSender) SendNotification(to, message string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Tournament notification")
	m.SetBody("text/plain", message)

	d := mail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}

// NewEmailSender retourne le sender SMTP si configuré, sinon le fallback log
func NewEmailSender() EmailSender {
	if os.Getenv("SMTP_HOST") != "" {
		return NewSMTPEmailSender()
	}
	return NewLogEmailSender()
}
