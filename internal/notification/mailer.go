package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/wb-go/wbf/logger"
)

// Mailer sends plain-text mail over authenticated SMTP. With an empty
// host it stays disabled and only logs, the same way the Telegram
// notifier handles a missing token.
type Mailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger logger.Logger
}

func NewMailer(host string, port int, username, password, from string, logger logger.Logger) *Mailer {
	m := &Mailer{from: from, logger: logger}
	if host == "" {
		logger.Warn("smtp host is empty, outgoing mail disabled")
		return m
	}

	m.addr = fmt.Sprintf("%s:%d", host, port)
	m.auth = smtp.PlainAuth("", username, password, host)

	return m
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.addr == "" {
		m.logger.Debug("mail skipped (mailer disabled)", logger.String("subject", subject))
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
