package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryType distinguishes the two kinds of ledger entries.
type EntryType string

const (
	// EntryTypeIncome marks an entry that adds to the budget.
	EntryTypeIncome EntryType = "income"
	// EntryTypeExpense marks an entry that subtracts from the budget.
	EntryTypeExpense EntryType = "expense"
)

// Valid reports whether the entry type is one of the known kinds.
func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// Entry is a single income or expense record owned by an Account.
type Entry struct {
	ID        uuid.UUID // The unique identifier for the entry.
	AccountID uuid.UUID // Links the entry to the Account that owns it.
	Type      EntryType // income or expense.
	Amount    float64   // The monetary amount of the entry.
	Note      string    // Free-text description of the entry.
	CreatedAt time.Time // Timestamp of when this entry was recorded.
	UpdatedAt time.Time // Timestamp of the last modification to this entry.
}
