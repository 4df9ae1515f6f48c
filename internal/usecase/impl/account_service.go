// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "biudzetas/internal/delivery/context"
	"biudzetas/internal/domain/entity"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/repository"
	"biudzetas/internal/domain/service"
	"biudzetas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// dummyDigest is a well-formed digest compared against when the login email is
// unknown, so both failure branches pay the same hashing cost and response
// timing does not reveal whether an address is registered.
const dummyDigest = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accounts repository.AccountRepository
	hasher   service.PasswordHasher
	sessions service.SessionTokenService
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accounts repository.AccountRepository,
	hasher service.PasswordHasher,
	sessions service.SessionTokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts: accounts,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed secret. The display name is
// pre-checked for availability before the password is hashed; the unique
// index still decides under concurrent registrations.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering account", "email", input.Email)

	// 1. The display name must be free
	if _, err := srv.accounts.FindByName(ctx, input.Name); err == nil {
		return nil, domainerrors.ErrDuplicateAccount.WrapMessage("display name already taken")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check display name")
	}

	// 2. Hash the password before anything touches storage
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	// 3. Persist; a duplicate name or email surfaces as ErrDuplicateAccount
	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := srv.accounts.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}
	srv.log(ctx).Debug("account registered", "accountID", account.ID)

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login authenticates the email/secret pair and issues a session credential.
// An unknown email and a wrong password both return ErrInvalidCredentials so
// the endpoint does not reveal which addresses are registered.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Login attempt", "email", input.Email)

	// 1. Look up the account
	account, err := srv.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Burn the same hashing cost as a real comparison so the
			// unknown-email branch is not faster than a wrong password
			srv.hasher.Check(input.Password, dummyDigest)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	// 2. Verify the secret
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	// 3. Issue the session credential
	token, ttl, err := srv.sessions.Issue(account.ID, input.Remember)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}
	srv.log(ctx).Info("login succeeded", "accountID", account.ID, "remember", input.Remember)

	return &usecase.LoginOutput{Token: token, TTL: ttl, Account: account}, nil
}

// GetAccount retrieves a single account by id.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateProfile changes the display name, email and avatar reference.
func (srv *accountService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating profile", "accountID", input.AccountID)

	// 1. Find the account
	account, err := srv.accounts.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	// 2. Apply the changes
	account.Name = input.Name
	account.Email = input.Email
	if input.Avatar != "" {
		account.Avatar = input.Avatar
	}

	// 3. Save; taking another account's name or email fails on the
	// unique constraint
	if err := srv.accounts.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return account, nil
}

// ListAccounts returns all accounts for the admin view.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accounts.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}
