package impl

import (
	"context"
	"log/slog"

	deliverycontext "biudzetas/internal/delivery/context"
	"biudzetas/internal/domain/entity"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/repository"
	"biudzetas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultPageSize = 5

// entryService implements the EntryUsecase interface.
type entryService struct {
	entries  repository.EntryRepository
	pageSize int
	logger   *slog.Logger
}

// NewEntryService is the constructor for entryService. pageSize <= 0 falls
// back to the default.
func NewEntryService(
	entries repository.EntryRepository,
	pageSize int,
	logger *slog.Logger,
) usecase.EntryUsecase {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &entryService{
		entries:  entries,
		pageSize: pageSize,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEntry records a new income or expense for the acting account.
func (srv *entryService) CreateEntry(ctx context.Context, input *usecase.CreateEntryInput) (*entity.Entry, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown entry type")
	}

	entry := &entity.Entry{
		AccountID: input.AccountID,
		Type:      input.Type,
		Amount:    input.Amount,
		Note:      input.Note,
	}
	if err := srv.entries.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create entry")
	}
	srv.log(ctx).Debug("entry created", "entryID", entry.ID, "accountID", input.AccountID)

	return entry, nil
}

// GetEntry loads a record and verifies it belongs to the acting account.
func (srv *entryService) GetEntry(ctx context.Context, entryID, accountID uuid.UUID) (*entity.Entry, error) {
	entry, err := srv.findOwned(ctx, entryID, accountID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateEntry replaces the mutable fields of a record the account owns.
func (srv *entryService) UpdateEntry(ctx context.Context, input *usecase.UpdateEntryInput) (*entity.Entry, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown entry type")
	}

	// 1. Load and check ownership
	entry, err := srv.findOwned(ctx, input.EntryID, input.AccountID)
	if err != nil {
		return nil, err
	}

	// 2. Apply and save
	entry.Type = input.Type
	entry.Amount = input.Amount
	entry.Note = input.Note

	if err := srv.entries.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update entry")
	}
	srv.log(ctx).Debug("entry updated", "entryID", entry.ID)

	return entry, nil
}

// DeleteEntry removes a record the account owns.
func (srv *entryService) DeleteEntry(ctx context.Context, entryID, accountID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, entryID, accountID); err != nil {
		return err
	}

	if err := srv.entries.Delete(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete entry")
	}
	srv.log(ctx).Info("entry deleted", "entryID", entryID, "accountID", accountID)

	return nil
}

// ListEntries returns one page of the account's records, newest first.
func (srv *entryService) ListEntries(ctx context.Context, input *usecase.ListEntriesInput) (*usecase.ListEntriesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage <= 0 {
		perPage = srv.pageSize
	}

	total, err := srv.entries.CountByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entries")
	}

	entries, err := srv.entries.FindByAccount(ctx, input.AccountID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &usecase.ListEntriesOutput{
		Entries:    entries,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// ListAllEntries returns every record in the system for the admin view.
func (srv *entryService) ListAllEntries(ctx context.Context) ([]*entity.Entry, error) {
	entries, err := srv.entries.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all entries")
	}

	return entries, nil
}

// findOwned loads an entry and enforces that it belongs to accountID.
func (srv *entryService) findOwned(ctx context.Context, entryID, accountID uuid.UUID) (*entity.Entry, error) {
	entry, err := srv.entries.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.ErrEntryNotFound.WrapMessage("entry not found")
		}

		return nil, errors.Wrap(err, "failed to find entry")
	}

	if entry.AccountID != accountID {
		return nil, domainerrors.ErrEntryOwnership.WrapMessage("entry belongs to another account")
	}

	return entry, nil
}
