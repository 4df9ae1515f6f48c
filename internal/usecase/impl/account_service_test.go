package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "biudzetas/internal/delivery/context"
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

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	accounts *mockRepo.MockAccountRepository
	hasher   *mockSvc.MockPasswordHasher
	sessions *mockSvc.MockSessionTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accounts := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	sessions := mockSvc.NewMockSessionTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAccountService(accounts, hasher, sessions, logger)

	return accountServiceFixtures{
		service:  service,
		accounts: accounts,
		hasher:   hasher,
		sessions: sessions,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:            "Jonas",
		Email:           "jonas@example.com",
		Password:        "slaptazodis1",
		PasswordConfirm: "slaptazodis1",
	}

	fx.accounts.EXPECT().FindByName(ctx, "Jonas").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("slaptazodis1").Return("$2a$12$hash", nil)
	fx.accounts.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = uuid.New()
			account.Avatar = entity.DefaultAvatar
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Jonas", out.Account.Name)
	assert.Equal(t, "jonas@example.com", out.Account.Email)
	assert.Equal(t, "$2a$12$hash", out.Account.PasswordHash)
	assert.Equal(t, entity.DefaultAvatar, out.Account.Avatar)
	assert.NotEqual(t, uuid.Nil, out.Account.ID)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:            "Jonas",
		Email:           "jonas@example.com",
		Password:        "slaptazodis1",
		PasswordConfirm: "slaptazodis1",
	}

	fx.accounts.EXPECT().FindByName(ctx, "Jonas").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("slaptazodis1").Return("$2a$12$hash", nil)
	fx.accounts.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrDuplicateAccount.WrapMessage("email already taken"))

	out, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
}

func TestAccountService_Register_NameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:            "Jonas",
		Email:           "kitas@example.com",
		Password:        "slaptazodis1",
		PasswordConfirm: "slaptazodis1",
	}

	fx.accounts.EXPECT().
		FindByName(ctx, "Jonas").
		Return(&entity.Account{ID: uuid.New(), Name: "Jonas"}, nil)

	out, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:            "Jonas",
		Email:           "jonas@example.com",
		Password:        "slaptazodis1",
		PasswordConfirm: "slaptazodis1",
	}

	fx.accounts.EXPECT().FindByName(ctx, "Jonas").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("slaptazodis1").Return("", errors.New("cost out of range"))

	out, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "jonas@example.com",
		PasswordHash: "$2a$12$hash",
	}

	fx.accounts.EXPECT().FindByEmail(ctx, "jonas@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("slaptazodis1", "$2a$12$hash").Return(true)
	fx.sessions.EXPECT().Issue(accountID, true).Return("token", 720*time.Hour, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jonas@example.com",
		Password: "slaptazodis1",
		Remember: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, 720*time.Hour, out.TTL)
	assert.Equal(t, account, out.Account)
}

// An unknown email and a wrong password must be indistinguishable to the
// caller so the login endpoint cannot confirm which addresses exist.
func TestAccountService_Login_UnknownEmailAndWrongPasswordMatch(t *testing.T) {
	ctx := context.Background()

	fx1 := createTestAccountService(t)
	fx1.accounts.EXPECT().
		FindByEmail(ctx, "nera@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx1.hasher.EXPECT().Check("bet kas", dummyDigest).Return(false)

	_, errUnknown := fx1.service.Login(ctx, &usecase.LoginInput{
		Email:    "nera@example.com",
		Password: "bet kas",
	})

	fx2 := createTestAccountService(t)
	fx2.accounts.EXPECT().
		FindByEmail(ctx, "jonas@example.com").
		Return(&entity.Account{ID: uuid.New(), PasswordHash: "$2a$12$hash"}, nil)
	fx2.hasher.EXPECT().Check("neteisingas", "$2a$12$hash").Return(false)

	_, errWrongPassword := fx2.service.Login(ctx, &usecase.LoginInput{
		Email:    "jonas@example.com",
		Password: "neteisingas",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPassword)
	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrongPassword, domainerrors.ErrInvalidCredentials))

	var appErr1, appErr2 domainerrors.AppError
	require.True(t, errors.As(errUnknown, &appErr1))
	require.True(t, errors.As(errWrongPassword, &appErr2))
	assert.Equal(t, appErr1.Message(), appErr2.Message())
	assert.Equal(t, appErr1.HTTPCode(), appErr2.HTTPCode())
}

// The unknown-email branch must run a digest comparison anyway, so its
// response time matches the wrong-password branch.
func TestAccountService_Login_UnknownEmailStillChecksSecret(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.accounts.EXPECT().
		FindByEmail(ctx, "nera@example.com").
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Check("bet kas", dummyDigest).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nera@example.com",
		Password: "bet kas",
	})

	require.Error(t, err)
	fx.hasher.AssertCalled(t, "Check", "bet kas", dummyDigest)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

// A logger stored on the request context takes precedence over the logger
// the service was constructed with, so request ids reach service logs.
func TestAccountService_UsesRequestScopedLogger(t *testing.T) {
	fx := createTestAccountService(t)

	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), scoped)

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "jonas@example.com", PasswordHash: "$2a$12$hash"}
	fx.accounts.EXPECT().FindByEmail(ctx, "jonas@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("slaptazodis1", "$2a$12$hash").Return(true)
	fx.sessions.EXPECT().Issue(accountID, false).Return("token", 12*time.Hour, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jonas@example.com",
		Password: "slaptazodis1",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "login succeeded")
	assert.Contains(t, buf.String(), "request_id=req-123")
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{
		ID:     accountID,
		Name:   "Jonas",
		Email:  "jonas@example.com",
		Avatar: entity.DefaultAvatar,
	}

	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(existing, nil)
	fx.accounts.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID: accountID,
		Name:      "Jonas P.",
		Email:     "jonas.p@example.com",
		Avatar:    "jonas.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jonas P.", updated.Name)
	assert.Equal(t, "jonas.p@example.com", updated.Email)
	assert.Equal(t, "jonas.png", updated.Avatar)
}

func TestAccountService_UpdateProfile_KeepsAvatarWhenEmpty(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{
		ID:     accountID,
		Name:   "Jonas",
		Email:  "jonas@example.com",
		Avatar: "jonas.png",
	}

	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(existing, nil)
	fx.accounts.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID: accountID,
		Name:      "Jonas",
		Email:     "jonas@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "jonas.png", updated.Avatar)
}

func TestAccountService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{ID: accountID, Name: "Jonas", Email: "jonas@example.com"}

	fx.accounts.EXPECT().FindByID(ctx, accountID).Return(existing, nil)
	fx.accounts.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrDuplicateAccount.WrapMessage("email already taken"))

	updated, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID: accountID,
		Name:      "Jonas",
		Email:     "kitas@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
}

func TestAccountService_ListAccounts_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	expected := []*entity.Account{
		{ID: uuid.New(), Name: "Jonas"},
		{ID: uuid.New(), Name: "Ona"},
	}

	fx.accounts.EXPECT().List(ctx).Return(expected, nil)

	accounts, err := fx.service.ListAccounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, accounts)
}
