package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JournalHandler handles training diary requests.
type JournalHandler struct {
	uc     usecase.JournalUsecase
	logger *slog.Logger
}

// NewJournalHandler is the constructor for JournalHandler.
func NewJournalHandler(uc usecase.JournalUsecase, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{uc: uc, logger: logger}
}

type journalEntryRequest struct {
	Entry string `json:"entry" validate:"required"`
}

// CreateEntry creates a journal entry for the authenticated user.
func (h *JournalHandler) CreateEntry(c echo.Context) error {
	var req journalEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.CreateJournalEntry(c.Request().Context(), middleware.Principal(c), usecase.CreateJournalInput{
		Entry: req.Entry,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toJournalDTO(entry), "Journal entry created successfully")
}

// GetEntry returns a single journal entry owned by the authenticated user.
func (h *JournalHandler) GetEntry(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.uc.GetJournalEntry(c.Request().Context(), middleware.Principal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJournalDTO(entry), "")
}

// ListEntries returns all journal entries owned by the authenticated user.
func (h *JournalHandler) ListEntries(c echo.Context) error {
	entries, err := h.uc.ListJournalEntries(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJournalDTOs(entries), "")
}

// UpdateEntry replaces the text of a journal entry.
func (h *JournalHandler) UpdateEntry(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req journalEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.UpdateJournalEntry(c.Request().Context(), middleware.Principal(c), id, usecase.UpdateJournalInput{
		Entry: req.Entry,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJournalDTO(entry), "Journal entry updated successfully")
}

// DeleteEntry deletes a journal entry owned by the authenticated user.
func (h *JournalHandler) DeleteEntry(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJournalEntry(c.Request().Context(), middleware.Principal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Journal entry deleted successfully")
}
