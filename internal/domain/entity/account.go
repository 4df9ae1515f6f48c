// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvatar is the sentinel avatar reference assigned to accounts that
// never set a custom profile image.
const DefaultAvatar = "default.jpg"

// Account represents a registered user's identity and credentials.
// Display name and email are each unique across all accounts; the store
// enforces this at write time. The account itself carries no authentication
// behavior: who is currently logged in is the session layer's concern.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Unique display name, shown in the UI.
	Email        string    // Unique email address, used as the login identifier.
	PasswordHash string    // bcrypt digest of the secret. The plaintext is never persisted.
	Avatar       string    // Profile-image reference; DefaultAvatar when none was set.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
