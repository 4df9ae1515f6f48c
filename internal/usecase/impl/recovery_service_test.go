package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"biudzetas/internal/domain/entity"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/repository"
	mockRepo "biudzetas/internal/mocks/repository"
	mockSvc "biudzetas/internal/mocks/service"
	"biudzetas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recoveryServiceFixtures holds all test dependencies for recovery service tests.
type recoveryServiceFixtures struct {
	service  usecase.RecoveryUsecase
	accounts *mockRepo.MockAccountRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockResetTokenService
	mailer   *mockSvc.MockMailer
}

func createTestRecoveryService(t *testing.T) recoveryServiceFixtures {
	accounts := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockResetTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewRecoveryService(accounts, hasher, tokens, mailer, logger)

	return recoveryServiceFixtures{
		service:  service,
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func TestRecoveryService_RequestReset_Success(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "jonas@example.com"}

	fx.accounts.EXPECT().FindByEmail(ctx, "jonas@example.com").Return(account, nil)
	fx.tokens.EXPECT().Issue(accountID).Return("signed-token", nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, "jonas@example.com", "http://127.0.0.1:8000/reset_password/signed-token").
		Return(nil)

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{
		Email:   "jonas@example.com",
		BaseURL: "http://127.0.0.1:8000",
	})

	require.NoError(t, err)
}

// An unknown address succeeds without issuing a token or sending mail, so
// this endpoint cannot be used to discover which emails are registered.
func TestRecoveryService_RequestReset_UnknownEmailSilentlySucceeds(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()

	fx.accounts.EXPECT().
		FindByEmail(ctx, "nera@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{
		Email:   "nera@example.com",
		BaseURL: "http://127.0.0.1:8000",
	})

	require.NoError(t, err)
	fx.tokens.AssertNotCalled(t, "Issue", mock.Anything)
	fx.mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecoveryService_RequestReset_MailFailure(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "jonas@example.com"}

	fx.accounts.EXPECT().FindByEmail(ctx, "jonas@example.com").Return(account, nil)
	fx.tokens.EXPECT().Issue(accountID).Return("signed-token", nil)
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, "jonas@example.com", mock.AnythingOfType("string")).
		Return(domainerrors.ErrMailDelivery.WrapMessage("smtp unreachable"))

	err := fx.service.RequestReset(ctx, &usecase.RequestResetInput{
		Email:   "jonas@example.com",
		BaseURL: "http://127.0.0.1:8000",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDelivery))
}

func TestRecoveryService_ConfirmReset_Success(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "jonas@example.com", PasswordHash: "$2a$12$old"}

	fx.tokens.EXPECT().Verify("signed-token").Return(accountID, nil)
	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	fx.hasher.EXPECT().Hash("naujas-slaptazodis").Return("$2a$12$new", nil)
	fx.accounts.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.Equal(t, "$2a$12$new", updated.PasswordHash)
		}).
		Return(nil)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:           "signed-token",
		Password:        "naujas-slaptazodis",
		PasswordConfirm: "naujas-slaptazodis",
	})

	require.NoError(t, err)
}

func TestRecoveryService_ConfirmReset_BadToken(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()

	fx.tokens.EXPECT().
		Verify("tampered").
		Return(uuid.Nil, domainerrors.ErrTokenSignature.WrapMessage("signature mismatch"))

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:           "tampered",
		Password:        "naujas-slaptazodis",
		PasswordConfirm: "naujas-slaptazodis",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenSignature))
	fx.accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecoveryService_ConfirmReset_ExpiredToken(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()

	fx.tokens.EXPECT().
		Verify("stale").
		Return(uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("token is expired"))

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:           "stale",
		Password:        "naujas-slaptazodis",
		PasswordConfirm: "naujas-slaptazodis",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestRecoveryService_ConfirmReset_SubjectGone(t *testing.T) {
	fx := createTestRecoveryService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.tokens.EXPECT().Verify("signed-token").Return(accountID, nil)
	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ConfirmReset(ctx, &usecase.ConfirmResetInput{
		Token:           "signed-token",
		Password:        "naujas-slaptazodis",
		PasswordConfirm: "naujas-slaptazodis",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownAccount))
}

// Every verification failure carries the same outward message so the
// endpoint reveals nothing about why the token was rejected.
func TestRecoveryService_ConfirmReset_FailureMessagesMatch(t *testing.T) {
	cases := []struct {
		name     string
		sentinel *domainerrors.BaseError
	}{
		{"bad signature", domainerrors.ErrTokenSignature},
		{"expired", domainerrors.ErrTokenExpired},
		{"unknown subject", domainerrors.ErrUnknownAccount},
	}

	var messages []string
	for _, tc := range cases {
		var appErr domainerrors.AppError
		require.True(t, errors.As(tc.sentinel, &appErr), tc.name)
		messages = append(messages, appErr.Message())
		assert.Equal(t, 401, appErr.HTTPCode(), tc.name)
	}

	assert.Equal(t, messages[0], messages[1])
	assert.Equal(t, messages[1], messages[2])
}
