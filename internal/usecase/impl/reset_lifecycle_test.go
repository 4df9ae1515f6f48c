package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"biudzetas/config"
	"biudzetas/internal/domain/entity"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/infra/auth"
	mockRepo "biudzetas/internal/mocks/repository"
	mockSvc "biudzetas/internal/mocks/service"
	"biudzetas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Drives the reset flow with the real hasher and the real token service so
// the pieces are proven to fit: an expired token fails, a fresh one replaces
// the secret, and afterwards only the new secret verifies.
func TestPasswordResetLifecycle(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.Reset = "lifecycle-reset-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, ResetTokenTTL: time.Hour}

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewResetTokenService(cfg)
	require.NoError(t, err)

	oldHash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "alice@x.com", PasswordHash: oldHash}

	accounts := mockRepo.NewMockAccountRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	service := NewRecoveryService(accounts, hasher, tokens, mailer, logger)

	// An exhausted ttl rejects the token with the expiry outcome.
	expiredCfg := &config.Config{}
	expiredCfg.SecretKey.Reset = cfg.SecretKey.Reset
	expiredCfg.Auth = &config.AuthConfig{ResetTokenTTL: -time.Minute}
	expiredTokens, err := auth.NewResetTokenService(expiredCfg)
	require.NoError(t, err)
	expired, err := expiredTokens.Issue(accountID)
	require.NoError(t, err)

	err = service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:           expired,
		Password:        "secret2",
		PasswordConfirm: "secret2",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	// A fresh token replaces the secret.
	fresh, err := tokens.Issue(accountID)
	require.NoError(t, err)

	accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	accounts.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, updated *entity.Account) error {
			account.PasswordHash = updated.PasswordHash

			return nil
		})

	err = service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:           fresh,
		Password:        "secret2",
		PasswordConfirm: "secret2",
	})
	require.NoError(t, err)

	assert.False(t, hasher.Check("secret1", account.PasswordHash))
	assert.True(t, hasher.Check("secret2", account.PasswordHash))
}
