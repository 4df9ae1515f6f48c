package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is what a verified session token resolves to.
type SessionClaims struct {
	AccountID uuid.UUID
	Remember  bool // Issued with the long-lived "remember me" policy.
}

// SessionTokenService issues and verifies the signed credential that binds a
// browser to an account. Sessions are stateless: there is no server-side
// session table, so verification is a pure function of token and key.
type SessionTokenService interface {
	// Issue creates a signed session token for the account. When remember
	// is set the token gets the long-lived TTL; otherwise the short one.
	// The returned ttl also drives the cookie lifetime.
	Issue(accountID uuid.UUID, remember bool) (token string, ttl time.Duration, err error)

	// Verify checks the token signature and expiry and returns its claims.
	Verify(token string) (*SessionClaims, error)
}

// ResetTokenService issues and verifies the time-bounded proof of account
// ownership used to authorize a secret change without the original secret.
// Tokens are self-contained and never stored server-side, which trades the
// ability to revoke one early for not needing a token table and its cleanup.
type ResetTokenService interface {
	// Issue creates a signed token embedding the account identifier and the
	// issuance time, valid for TTL from issuance.
	Issue(accountID uuid.UUID) (string, error)

	// Verify checks the token and returns the embedded account identifier.
	// Fails with domain ErrTokenSignature when the token was tampered with
	// or signed under a different key, and ErrTokenExpired when its
	// time-to-live has elapsed.
	Verify(token string) (uuid.UUID, error)

	// TTL returns the configured token time-to-live.
	TTL() time.Duration
}
