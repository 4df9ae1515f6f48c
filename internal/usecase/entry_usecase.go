package usecase

import (
	"context"

	"biudzetas/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEntryInput defines a new budget record.
type CreateEntryInput struct {
	AccountID uuid.UUID        `json:"-"`
	Type      entity.EntryType `json:"type" validate:"required,oneof=income expense"`
	Amount    float64          `json:"amount" validate:"required,gt=0"`
	Note      string           `json:"note" validate:"max=500"`
}

// UpdateEntryInput replaces the mutable fields of an existing record.
type UpdateEntryInput struct {
	EntryID   uuid.UUID        `json:"-"`
	AccountID uuid.UUID        `json:"-"`
	Type      entity.EntryType `json:"type" validate:"required,oneof=income expense"`
	Amount    float64          `json:"amount" validate:"required,gt=0"`
	Note      string           `json:"note" validate:"max=500"`
}

// ListEntriesInput selects one page of an account's records.
type ListEntriesInput struct {
	AccountID uuid.UUID
	Page      int
	PerPage   int
}

// ListEntriesOutput is one page of records plus paging metadata.
type ListEntriesOutput struct {
	Entries    []*entity.Entry
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

// EntryUsecase defines the business operations on budget records. Every
// mutating operation checks that the record belongs to the acting account.
type EntryUsecase interface {
	CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.Entry, error)

	// GetEntry loads a record and verifies ownership.
	GetEntry(ctx context.Context, entryID, accountID uuid.UUID) (*entity.Entry, error)

	UpdateEntry(ctx context.Context, input *UpdateEntryInput) (*entity.Entry, error)

	DeleteEntry(ctx context.Context, entryID, accountID uuid.UUID) error

	// ListEntries returns the newest records first, paginated.
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// ListAllEntries returns every record in the system for the admin view.
	ListAllEntries(ctx context.Context) ([]*entity.Entry, error)
}
