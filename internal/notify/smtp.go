// Package notify e-mails the shop's admin mailbox about new orders and
// contact messages. Delivery is best effort: callers log failures and carry
// on.
package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/config"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

const (
	dialTimeout = 10 * time.Second
	// sendTimeout bounds the whole SMTP conversation.
	sendTimeout = 30 * time.Second
	// stampLayout is the timestamp format used in message bodies.
	stampLayout = "2006-01-02 15:04:05"
)

// sendFunc delivers one message; tests replace it.
type sendFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier sends plain-text notifications through an SMTP relay using
// STARTTLS and PLAIN auth.
type SMTPNotifier struct {
	cfg     config.SMTPConfig
	send    sendFunc
	now     func() time.Time
	timeout time.Duration
}

// NewSMTPNotifier returns a notifier for cfg. If cfg is not Enabled every
// notification is skipped.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: sendMail, now: time.Now, timeout: sendTimeout}
}

// NotifyOrder sends the "New Order Received" message for o.
func (n *SMTPNotifier) NotifyOrder(ctx context.Context, o *domain.Order) error {
	subject := "New Order Received - " + o.PublicID()
	body := fmt.Sprintf(`New Order Received!

Order ID: %s
Name: %s
Mobile: %s
Email: %s
Address: %s
Product: %s
Quantity: %d
Delivery Date: %s
Delivery Time: %s
Notes: %s

Order placed at: %s
`, o.PublicID(), o.Name, o.Mobile, orNA(o.Email), o.Address, o.ProductType,
		o.Quantity, o.DeliveryDate, o.DeliveryTime, orNone(o.Notes), n.now().Format(stampLayout))
	return n.Send(ctx, subject, body)
}

// NotifyContact sends the "New Contact Message" message for m.
func (n *SMTPNotifier) NotifyContact(ctx context.Context, m *domain.ContactMessage) error {
	subject := "New Contact Message - " + m.Subject
	body := fmt.Sprintf(`New Contact Form Submission!

Name: %s
Email: %s
Phone: %s
Subject: %s

Message:
%s

Received at: %s
`, m.Name, m.Email, m.Phone, m.Subject, m.Message, n.now().Format(stampLayout))
	return n.Send(ctx, subject, body)
}

// Send delivers one message to the admin address. Without credentials it
// logs and returns nil. The conversation with the relay is bounded by the
// notifier's timeout and by ctx.
func (n *SMTPNotifier) Send(ctx context.Context, subject, body string) error {
	if !n.cfg.Enabled() {
		log.Ctx(ctx).Debug().Str("subject", subject).Msg("smtp not configured, skipping notification")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	addr := net.JoinHostPort(n.cfg.Server, strconv.Itoa(n.cfg.Port))
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Server)
	msg := buildMessage(n.cfg.User, n.cfg.AdminEmail, subject, body, n.now())

	if err := n.send(ctx, addr, auth, n.cfg.User, []string{n.cfg.AdminEmail}, msg); err != nil {
		return fmt.Errorf("send %q: %w", subject, err)
	}
	log.Ctx(ctx).Info().Str("subject", subject).Msg("admin notified")
	return nil
}

// sendMail is smtp.SendMail with a dial timeout and a connection deadline
// taken from ctx. Cancelling ctx aborts a conversation in progress.
func sendMail(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if dl, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(dl); err != nil {
			conn.Close()
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	host, _, _ := net.SplitHostPort(addr)
	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(a); err != nil {
				return err
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// buildMessage renders an RFC 5322 message with CRLF line endings.
func buildMessage(from, to, subject, body string, at time.Time) []byte {
	var b bytes.Buffer
	hdr := func(k, v string) { fmt.Fprintf(&b, "%s: %s\r\n", k, v) }
	hdr("From", from)
	hdr("To", to)
	hdr("Subject", sanitizeHeader(subject))
	hdr("Date", at.Format(time.RFC1123Z))
	hdr("MIME-Version", "1.0")
	hdr("Content-Type", `text/plain; charset="utf-8"`)
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))
	return b.Bytes()
}

// sanitizeHeader keeps user text from injecting extra headers.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
