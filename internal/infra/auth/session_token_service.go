package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"biudzetas/config"
	"biudzetas/internal/domain/service"
)

const sessionTokenType = "session"

// sessionTokenService implements service.SessionTokenService using signed
// JWTs. The token doubles as the session cookie value, so a browser session
// is nothing more than this credential.
type sessionTokenService struct {
	secret      string
	sessionTTL  time.Duration // Plain login: expires with the browser session policy.
	rememberTTL time.Duration // "Remember me" login: long-lived credential.
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	sessionTTL := config.DefaultSessionTTL
	rememberTTL := config.DefaultRememberTTL
	if cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			sessionTTL = cfg.Auth.SessionTTL
		}
		if cfg.Auth.RememberTTL > 0 {
			rememberTTL = cfg.Auth.RememberTTL
		}
	}

	return &sessionTokenService{
		secret:      cfg.SecretKey.Session,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}, nil
}

// Issue creates a signed session token bound to the account.
func (s *sessionTokenService) Issue(accountID uuid.UUID, remember bool) (string, time.Duration, error) {
	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      accountID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
		"typ":      sessionTokenType,
		"remember": remember,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to sign session token")
	}

	return token, ttl, nil
}

// Verify checks the token signature and expiry and resolves its claims.
func (s *sessionTokenService) Verify(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(err, "invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse session token claims")
	}

	if typ, _ := claims["typ"].(string); typ != sessionTokenType {
		return nil, errors.New("unexpected token type")
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid account id in session token")
	}

	remember, _ := claims["remember"].(bool)

	return &service.SessionClaims{
		AccountID: accountID,
		Remember:  remember,
	}, nil
}
