package middleware

import (
	"strings"

	"biudzetas/config"
	"biudzetas/internal/delivery/http/response"
	"biudzetas/internal/domain/service"
	"biudzetas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionCookieName carries the signed session token between requests.
const SessionCookieName = "biudzetas_session"

// keyAccountID stores the authenticated account id on echo.Context.
const keyAccountID = "accountID"

// AuthMiddleware validates the session credential on protected routes.
type AuthMiddleware struct {
	sessions service.SessionTokenService
	accounts usecase.AccountUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionTokenService, accounts usecase.AccountUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, accounts: accounts, cfg: cfg}
}

// Authenticate validates the session token from the session cookie or, for
// non-browser clients, a Bearer Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			cookie, err := c.Cookie(SessionCookieName)
			if err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		claims, err := m.sessions.Verify(token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired session")
		}

		c.Set(keyAccountID, claims.AccountID)

		return next(c)
	}
}

// RequireAdmin allows only accounts whose email is on the configured admin
// list. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountID, ok := AccountID(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		account, err := m.accounts.GetAccount(c.Request().Context(), accountID)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid session subject")
		}

		if !m.cfg.IsAdminEmail(account.Email) {
			return response.Forbidden(c, "FORBIDDEN", "Administrator access required")
		}

		return next(c)
	}
}

// AccountID returns the authenticated account id set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyAccountID).(uuid.UUID)

	return id, ok
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}
