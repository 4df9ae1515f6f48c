package sqlite

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"biudzetas/internal/domain/entity"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/repository"
	"biudzetas/internal/infra/persistence/model"
)

// entryRepository implements the domain.EntryRepository interface using GORM.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

// Create persists a new entry.
func (repo *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "entry references a missing account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindByID retrieves a single entry by its unique ID.
func (repo *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryM model.EntryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by id")
	}

	return toEntryDomain(&entryM), nil
}

// FindByAccount returns one page of the account's entries, newest first.
func (repo *entryRepository) FindByAccount(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]*entity.Entry, error) {
	var entryMs []model.EntryModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries by account")
	}

	entries := make([]*entity.Entry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toEntryDomain(&entryMs[i]))
	}

	return entries, nil
}

// CountByAccount returns the total number of entries owned by the account.
func (repo *entryRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count entries by account")
	}

	return count, nil
}

// Update modifies an existing entry.
func (repo *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Save(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update entry")
	}

	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// Delete removes an entry by its ID.
func (repo *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.EntryModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete entry")
	}

	return nil
}

// List returns every entry across all accounts, newest first. Admin view only.
func (repo *entryRepository) List(ctx context.Context) ([]*entity.Entry, error) {
	var entryMs []model.EntryModel
	if err := repo.db.WithContext(ctx).Order("created_at desc").Find(&entryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	entries := make([]*entity.Entry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toEntryDomain(&entryMs[i]))
	}

	return entries, nil
}
