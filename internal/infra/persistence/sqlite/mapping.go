package sqlite

import (
	"biudzetas/internal/domain/entity"
	"biudzetas/internal/infra/persistence/model"
)

// Mapping between pure domain entities and GORM persistence models.

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Avatar:       m.Avatar,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Avatar:       a.Avatar,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toEntryDomain(m *model.EntryModel) *entity.Entry {
	return &entity.Entry{
		ID:        m.ID,
		AccountID: m.AccountID,
		Type:      entity.EntryType(m.Type),
		Amount:    m.Amount,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromEntryDomain(e *entity.Entry) *model.EntryModel {
	return &model.EntryModel{
		ID:        e.ID,
		AccountID: e.AccountID,
		Type:      string(e.Type),
		Amount:    e.Amount,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
