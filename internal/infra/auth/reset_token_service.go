package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"biudzetas/config"
	domainerrors "biudzetas/internal/domain/errors"
	"biudzetas/internal/domain/service"
)

const resetTokenType = "reset"

// resetTokenService implements service.ResetTokenService as stateless HS256
// JWTs signed with a dedicated reset secret. Verification is a pure function
// of token, key and clock; nothing is stored server-side, so a token cannot
// be revoked before its expiry and remains valid after a secret change until
// it expires on its own.
type resetTokenService struct {
	secret string
	ttl    time.Duration
}

// NewResetTokenService is the constructor for resetTokenService.
func NewResetTokenService(cfg *config.Config) (service.ResetTokenService, error) {
	if cfg.SecretKey.Reset == "" {
		return nil, errors.New("reset secret must be provided")
	}

	ttl := config.DefaultResetTokenTTL
	if cfg.Auth != nil && cfg.Auth.ResetTokenTTL != 0 {
		ttl = cfg.Auth.ResetTokenTTL
	}

	return &resetTokenService{
		secret: cfg.SecretKey.Reset,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the account identifier and the
// issuance time, valid for TTL from issuance.
func (s *resetTokenService) Issue(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
		"typ": resetTokenType,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign reset token")
	}

	return token, nil
}

// Verify checks the token and returns the embedded account identifier.
func (s *resetTokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		// An elapsed ttl and a bad signature stay distinct internally; the
		// user-visible message is the same for both.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, domainerrors.ErrTokenExpired.WrapMessage("reset token expired")
		}

		return uuid.Nil, domainerrors.ErrTokenSignature.WrapMessage("reset token rejected")
	}
	if !token.Valid {
		return uuid.Nil, domainerrors.ErrTokenSignature.WrapMessage("reset token rejected")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenSignature.WrapMessage("failed to parse reset token claims")
	}

	// A session token signed under the session key already fails the
	// signature check; the type claim guards against key reuse mistakes.
	if typ, _ := claims["typ"].(string); typ != resetTokenType {
		return uuid.Nil, domainerrors.ErrTokenSignature.WrapMessage("unexpected token type")
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTokenSignature.WrapMessage("invalid account id in reset token")
	}

	return accountID, nil
}

// TTL returns the configured token time-to-live.
func (s *resetTokenService) TTL() time.Duration {
	return s.ttl
}
