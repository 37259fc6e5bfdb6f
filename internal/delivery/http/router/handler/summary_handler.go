package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/domain/entity"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SummaryHandler exposes read access to generated summaries.
type SummaryHandler struct {
	uc     usecase.SummaryUsecase
	logger *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler.
func NewSummaryHandler(uc usecase.SummaryUsecase, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{uc: uc, logger: logger}
}

// ListSummaries returns the authenticated user's summaries, optionally
// filtered by the period query parameter.
func (h *SummaryHandler) ListSummaries(c echo.Context) error {
	period := entity.SummaryPeriod(c.QueryParam("period"))

	summaries, err := h.uc.ListSummaries(c.Request().Context(), middleware.Principal(c), period)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSummaryDTOs(summaries), "")
}

// GetSummary returns a single summary owned by the authenticated user.
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.uc.GetSummary(c.Request().Context(), middleware.Principal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSummaryDTO(summary), "")
}
