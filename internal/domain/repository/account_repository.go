// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"biudzetas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete
// implementation. Uniqueness of display name and email is ultimately enforced
// by the store's constraints at write time; lookups only serve friendlier
// pre-checks.
type AccountRepository interface {
	// Create persists a new account. A uniqueness collision comes back as
	// the domain ErrDuplicateAccount.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByName retrieves a single account by its display name.
	FindByName(ctx context.Context, name string) (*entity.Account, error)

	// Update modifies the mutable fields of an existing account (display
	// name, email, secret digest, avatar). A uniqueness collision comes
	// back as the domain ErrDuplicateAccount.
	Update(ctx context.Context, account *entity.Account) error

	// List returns every account. Used by the admin view only.
	List(ctx context.Context) ([]*entity.Account, error)
}
