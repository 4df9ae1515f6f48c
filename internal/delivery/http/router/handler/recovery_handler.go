package handler

import (
	"log/slog"
	"net/http"

	"biudzetas/config"
	"biudzetas/internal/delivery/http/response"
	"biudzetas/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecoveryHandler holds dependencies for the password-reset handlers.
type RecoveryHandler struct {
	uc     usecase.RecoveryUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewRecoveryHandler is the constructor for RecoveryHandler, injected by Fx.
func NewRecoveryHandler(uc usecase.RecoveryUsecase, cfg *config.Config, logger *slog.Logger) *RecoveryHandler {
	return &RecoveryHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// RequestReset accepts an email address and mails a reset link when the
// address belongs to an account. The response is the same either way.
func (h *RecoveryHandler) RequestReset(c echo.Context) error {
	var input usecase.RequestResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.BaseURL = h.cfg.HTTP.BaseURL

	if err := h.uc.RequestReset(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil,
		"If the address is registered, a reset link has been sent")
}

// ConfirmReset consumes the token from the URL and sets the new password.
func (h *RecoveryHandler) ConfirmReset(c echo.Context) error {
	var input usecase.ConfirmResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	input.Token = c.Param("token")
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ConfirmReset(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been updated")
}
