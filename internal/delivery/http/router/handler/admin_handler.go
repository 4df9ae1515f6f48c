package handler

import (
	"log/slog"
	"net/http"

	"biudzetas/internal/delivery/http/response"
	"biudzetas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler exposes whole-system listings behind the admin gate.
type AdminHandler struct {
	accounts usecase.AccountUsecase
	entries  usecase.EntryUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(accounts usecase.AccountUsecase, entries usecase.EntryUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		accounts: accounts,
		entries:  entries,
		logger:   logger,
	}
}

// ListAccounts returns every registered account.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, newAccountView(account))
	}

	return response.Success(c, http.StatusOK, views, "Accounts retrieved successfully")
}

// ListEntries returns every ledger entry in the system.
func (h *AdminHandler) ListEntries(c echo.Context) error {
	entries, err := h.entries.ListAllEntries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntryViews(entries), "Entries retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
