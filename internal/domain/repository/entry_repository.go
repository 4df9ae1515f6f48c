package repository

import (
	"context"
	"errors"

	"biudzetas/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when a ledger entry is not found.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository defines the standard operations for ledger-entry persistence.
type EntryRepository interface {
	// Create persists a new entry.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves a single entry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByAccount returns one page of the account's entries, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]*entity.Entry, error)

	// CountByAccount returns the total number of entries owned by the account.
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)

	// Update modifies an existing entry.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns every entry across all accounts. Used by the admin view only.
	List(ctx context.Context) ([]*entity.Entry, error)
}
