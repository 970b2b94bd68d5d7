package services

import "context"

type EmailSender interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

// NoopSender is used when SMTP is not configured.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, to string, subject string, body string) error {
	return nil
}
