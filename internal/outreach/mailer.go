package outreach

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends drafted invitations over SMTP. In dry-run mode (the default)
// it logs the message instead of sending, so no mail leaves the system until
// credentials are deliberately configured.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	dryRun   bool
	logger   *zap.Logger
}

func NewMailer(host string, port int, username, password string, dryRun bool, logger *zap.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		dryRun:   dryRun,
		logger:   logger,
	}
}

// Send delivers one invitation from the given sender address.
func (m *Mailer) Send(from string, invite Invite) error {
	if invite.To == "" {
		return fmt.Errorf("recipient address is required")
	}

	if m.dryRun {
		m.logger.Info("dry run: email not sent",
			zap.String("to", invite.To),
			zap.String("subject", invite.Subject),
		)
		return nil
	}

	msg := buildMessage(from, invite)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, from, []string{invite.To}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("email sent", zap.String("to", invite.To))
	return nil
}

func buildMessage(from string, invite Invite) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", invite.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", invite.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(invite.Body)
	return []byte(b.String())
}
