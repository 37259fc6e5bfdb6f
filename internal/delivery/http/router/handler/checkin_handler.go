package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckInHandler handles mood check-in requests.
type CheckInHandler struct {
	uc     usecase.CheckInUsecase
	logger *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler.
func NewCheckInHandler(uc usecase.CheckInUsecase, logger *slog.Logger) *CheckInHandler {
	return &CheckInHandler{uc: uc, logger: logger}
}

type createCheckInRequest struct {
	Mood map[string]any `json:"mood" validate:"required"`
}

// CreateCheckIn records a mood check-in for the authenticated user.
func (h *CheckInHandler) CreateCheckIn(c echo.Context) error {
	var req createCheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	checkIn, err := h.uc.CreateCheckIn(c.Request().Context(), middleware.Principal(c), usecase.CreateCheckInInput{
		Mood: req.Mood,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCheckInDTO(checkIn), "Check-in recorded successfully")
}

// ListCheckIns returns the authenticated user's check-ins, optionally
// bounded by the from/to query parameters (RFC 3339).
func (h *CheckInHandler) ListCheckIns(c echo.Context) error {
	input := usecase.ListCheckInsInput{}

	from, err := queryTime(c, "from")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return err
	}
	input.From = from
	input.To = to

	checkIns, err := h.uc.ListCheckIns(c.Request().Context(), middleware.Principal(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCheckInDTOs(checkIns), "")
}

// DeleteCheckIn deletes a check-in owned by the authenticated user.
func (h *CheckInHandler) DeleteCheckIn(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCheckIn(c.Request().Context(), middleware.Principal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Check-in deleted successfully")
}

// queryTime parses an optional RFC 3339 query parameter, returning nil
// when the parameter is absent.
func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an RFC 3339 timestamp")
	}

	return &t, nil
}
