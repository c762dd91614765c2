package mailer

import (
	"github.com/resend/resend-go/v2"
)

// Sender dispatches a rendered reminder email. Controllers depend on this
// interface so tests can substitute a fake.
type Sender interface {
	Send(to, subject, html string) error
}

// Client sends email through the Resend API.
type Client struct {
	resend    *resend.Client
	fromEmail string
}

func NewClient(apiKey, fromEmail string) *Client {
	return &Client{
		resend:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (c *Client) Send(to, subject, html string) error {
	_, err := c.resend.Emails.Send(&resend.SendEmailRequest{
		From:    c.fromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	return err
}
