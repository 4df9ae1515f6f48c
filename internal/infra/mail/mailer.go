// Package mail implements the outbound-email domain service over SMTP.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"biudzetas/config"
	deliverycontext "biudzetas/internal/delivery/context"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/service"
)

// smtpMailer delivers mail through a single SMTP relay. Sending is
// synchronous: request handling finishes after the relay accepted or
// rejected the message, and nothing is retried here.
type smtpMailer struct {
	client   *gomail.Client
	registry *TemplateRegistry
	from     string
	logger   *slog.Logger
}

// NewMailer is the constructor for smtpMailer.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail relay must be configured")
	}

	var options []gomail.Option
	if cfg.Mail.Port != 0 {
		options = append(options, gomail.WithPort(cfg.Mail.Port))
	}
	if cfg.Mail.AuthType != "" {
		options = append(options, gomail.WithSMTPAuth(gomail.SMTPAuthType(cfg.Mail.AuthType)))
	}
	if cfg.Mail.SSL {
		options = append(options, gomail.WithSSLPort(true))
	}
	options = append(options, gomail.WithUsername(cfg.Mail.Username))
	options = append(options, gomail.WithPassword(cfg.Mail.Password))

	client, err := gomail.NewClient(cfg.Mail.Host, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mail client")
	}

	registry, err := NewTemplateRegistry()
	if err != nil {
		return nil, err
	}

	return &smtpMailer{
		client:   client,
		registry: registry,
		from:     cfg.Mail.From,
		logger:   logger,
	}, nil
}

// Send delivers a plain-text message to a single recipient.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		failLogger := m.logger
		if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
			failLogger = failLogger.With(slog.String("request_id", requestID))
		}
		failLogger.Error("Mail delivery failed", slog.String("to", to), slog.Any("error", err))

		return domainerrors.ErrMailDelivery.WrapMessage("smtp delivery failed")
	}

	return nil
}

// SendPasswordReset renders the password-reset template around the link and
// delivers it.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	subject, body, err := m.registry.Render(TplPasswordReset, TemplateData{"ResetURL": resetURL})
	if err != nil {
		return err
	}

	return m.Send(ctx, to, subject, body)
}
