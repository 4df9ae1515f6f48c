package service

import "context"

// Mailer is the narrow contract the core depends on for outbound email.
// Retry and queueing policy is the implementation's concern, not the core's.
type Mailer interface {
	// Send delivers a plain-text message to a single recipient.
	Send(ctx context.Context, to, subject, body string) error

	// SendPasswordReset renders the password-reset template around the
	// given link and delivers it to the recipient.
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
