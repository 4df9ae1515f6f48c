// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"biudzetas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Validation rules run in declaration order per field.
type RegisterInput struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Remember requests a long-lived session credential instead of one that
	// expires with the browser session.
	Remember bool `json:"remember"`
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	AccountID uuid.UUID `json:"-"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	// Avatar is an opaque image reference; empty keeps the current one.
	Avatar string `json:"avatar" validate:"omitempty,max=255"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the session credential after a successful login.
type LoginOutput struct {
	Token   string
	TTL     time.Duration
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with a hashed secret.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates the email/secret pair and issues a session
	// credential. A missing account and a wrong password both fail with
	// the same InvalidCredentials outcome.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetAccount loads a single account by id.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdateProfile changes the display name, email and avatar reference.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Account, error)

	// ListAccounts returns all accounts for the admin view.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
}
