package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "biudzetas/internal/delivery/context"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/repository"
	"biudzetas/internal/domain/service"
	"biudzetas/internal/usecase"

	"github.com/pkg/errors"
)

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	tokens   service.ResetTokenService
	mailer   service.Mailer
	logger   *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	tokens service.ResetTokenService,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.RecoveryUsecase {
	return &recoveryService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset mails a time-limited reset link to the given address. An
// unknown address returns nil without sending anything, so the endpoint
// cannot be used to enumerate registered emails.
func (srv *recoveryService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) error {
	srv.log(ctx).Debug("Password reset requested", "email", input.Email)

	// 1. Look up the account; unknown addresses are silently accepted
	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Info("reset requested for unknown email", "email", input.Email)

			return nil
		}

		return errors.Wrap(err, "failed to find account")
	}

	// 2. Issue a signed, time-limited token bound to this account
	token, err := srv.tokens.Issue(account.ID)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	// 3. Deliver the link
	resetURL := fmt.Sprintf("%s/reset_password/%s", input.BaseURL, token)
	if err := srv.mailer.SendPasswordReset(ctx, account.Email, resetURL); err != nil {
		return errors.Wrap(err, "failed to send reset mail")
	}
	srv.log(ctx).Info("reset mail sent", "accountID", account.ID)

	return nil
}

// ConfirmReset verifies the token and replaces the account's secret. A bad
// signature, an expired token and a token whose subject no longer exists all
// surface the same generic failure.
func (srv *recoveryService) ConfirmReset(ctx context.Context, input *usecase.ConfirmResetInput) error {
	// 1. Verify signature, expiry and token type
	accountID, err := srv.tokens.Verify(input.Token)
	if err != nil {
		return errors.Wrap(err, "reset token rejected")
	}

	// 2. The subject must still exist
	account, err := srv.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrUnknownAccount.WrapMessage("token subject no longer exists")
		}

		return errors.Wrap(err, "failed to find account")
	}

	// 3. Replace the secret
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}
	account.PasswordHash = hash

	if err := srv.accounts.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update account")
	}
	srv.log(ctx).Info("password reset completed", "accountID", account.ID)

	return nil
}
