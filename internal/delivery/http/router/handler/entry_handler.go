package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"biudzetas/internal/delivery/http/middleware"
	"biudzetas/internal/delivery/http/response"
	"biudzetas/internal/domain/entity"
	"biudzetas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// entryView is the outward shape of a ledger entry.
type entryView struct {
	ID        string  `json:"id"`
	AccountID string  `json:"account_id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
}

func newEntryView(entry *entity.Entry) entryView {
	return entryView{
		ID:        entry.ID.String(),
		AccountID: entry.AccountID.String(),
		Type:      string(entry.Type),
		Amount:    entry.Amount,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func newEntryViews(entries []*entity.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newEntryView(entry))
	}

	return views
}

// EntryHandler holds dependencies for ledger-entry handlers.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the authenticated account's entries, newest
// first. The page is selected with ?page=N.
func (h *EntryHandler) List(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))

	output, err := h.uc.ListEntries(c.Request().Context(), &usecase.ListEntriesInput{
		AccountID: accountID,
		Page:      page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"entries":     newEntryViews(output.Entries),
		"page":        output.Page,
		"per_page":    output.PerPage,
		"total":       output.Total,
		"total_pages": output.TotalPages,
	}, "Entries retrieved successfully")
}

// Create records a new income or expense.
func (h *EntryHandler) Create(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var input usecase.CreateEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	input.AccountID = accountID
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.CreateEntry(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newEntryView(entry), "Entry created successfully")
}

// Update replaces the fields of an entry the account owns.
func (h *EntryHandler) Update(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	var input usecase.UpdateEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}
	input.EntryID = entryID
	input.AccountID = accountID
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.UpdateEntry(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEntryView(entry), "Entry updated successfully")
}

// Delete removes an entry the account owns.
func (h *EntryHandler) Delete(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry id")
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), entryID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entry deleted successfully")
}
