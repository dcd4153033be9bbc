package notification

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"offer_agent/internal/usecase/interfaces"
)

// LogNotifier only logs notifications. It is used when no SMTP host is set.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Send(_ context.Context, n interfaces.Notification) error {
	log.Printf("[notification][log] to=%s subject=%q body=%q", n.To, n.Subject, n.Body)
	return nil
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier delivers plain-text mail through an SMTP relay.
type SMTPNotifier struct {
	addr     string
	host     string
	from     string
	username string
	password string
	sendMail sendMailFunc
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		host:     host,
		from:     from,
		username: username,
		password: password,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPNotifier) Send(_ context.Context, n interfaces.Notification) error {
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	if err := s.sendMail(s.addr, auth, s.from, []string{n.To}, buildMessage(s.from, n)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", n.To, err)
	}
	log.Printf("[notification][smtp] sent to=%s subject=%q", n.To, n.Subject)
	return nil
}

func buildMessage(from string, n interfaces.Notification) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + n.To + "\r\n")
	b.WriteString("Subject: " + n.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	b.WriteString(strings.ReplaceAll(n.Body, "\n", "\r\n"))
	return []byte(b.String())
}
