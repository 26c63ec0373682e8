package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single transactional message. Implementations must be
// safe for concurrent use; the orchestrator decides per flow whether a send
// failure is fatal or best-effort.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends over STARTTLS, matching the store's Zoho mailbox setup.
type SMTPMailer struct {
	client *gomail.Client
}

func NewSMTPMailer(host string, port int, user, pass string) (*SMTPMailer, error) {
	c, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(user),
		gomail.WithPassword(pass),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: c}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := gomail.NewMsg()
	if err := mm.From(msg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}

// SelfCheck dials the SMTP server once so startup can log readiness. It is
// advisory only; request handling does not depend on it.
func (m *SMTPMailer) SelfCheck(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return err
	}
	return m.client.Close()
}
