package mailer

import (
	"context"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
)

// Mailer is the fire-and-forget email sink. Callers must treat failures as
// non-fatal; delivery is never awaited by domain logic.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type MailjetMailer struct {
	client    *mailjet.Client
	fromEmail string
	fromName  string
}

func NewMailjetMailer(apiKey, secretKey, fromEmail, fromName string) *MailjetMailer {
	return &MailjetMailer{
		client:    mailjet.NewMailjetClient(apiKey, secretKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *MailjetMailer) Send(ctx context.Context, to, subject, html string) error {
	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: m.fromEmail,
					Name:  m.fromName,
				},
				To: &mailjet.RecipientsV31{
					mailjet.RecipientV31{Email: to},
				},
				Subject:  subject,
				HTMLPart: html,
			},
		},
	}

	if _, err := m.client.SendMailV31(&messages); err != nil {
		return fmt.Errorf("mailjet send failed: %v", err)
	}
	return nil
}
