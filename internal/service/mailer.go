package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/medicore-health/hms/config"
	"github.com/medicore-health/hms/pkg/circuit"
	"go.uber.org/zap"
)

// Mailer delivers a single message. Implementations should be safe for
// concurrent use.
type Mailer interface {
	Send(from, to, subject, body string) error
}

// SMTPMailer talks plain SMTP. Deliveries run through a circuit breaker so a
// down mail relay cannot stall request handlers with repeated dial timeouts.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	breaker  *circuit.Breaker
	logger   *zap.Logger
}

func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		breaker:  circuit.NewBreaker("smtp", circuit.DefaultConfig(), logger),
		logger:   logger,
	}
}

func (m *SMTPMailer) Send(from, to, subject, body string) error {
	return m.breaker.Execute(func() error {
		addr := fmt.Sprintf("%s:%d", m.host, m.port)

		var auth smtp.Auth
		if m.username != "" {
			auth = smtp.PlainAuth("", m.username, m.password, m.host)
		}

		msg := buildMessage(from, to, subject, body)
		if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
			m.logger.Error("smtp delivery failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
			return err
		}
		m.logger.Info("mail sent",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	})
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
