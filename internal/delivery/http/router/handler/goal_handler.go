package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/domain/entity"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GoalHandler handles goal requests.
type GoalHandler struct {
	uc     usecase.GoalUsecase
	logger *slog.Logger
}

// NewGoalHandler is the constructor for GoalHandler.
func NewGoalHandler(uc usecase.GoalUsecase, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{uc: uc, logger: logger}
}

type createGoalRequest struct {
	Description string     `json:"description" validate:"required"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
}

type updateGoalRequest struct {
	Description *string    `json:"description"`
	EndDate     *time.Time `json:"end_date"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// CreateGoal handles the goal creation request.
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	goal, err := h.uc.CreateGoal(c.Request().Context(), middleware.Principal(c), usecase.CreateGoalInput{
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGoalDTO(goal), "Goal created successfully")
}

// GetGoal returns a single goal owned by the authenticated user.
func (h *GoalHandler) GetGoal(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	goal, err := h.uc.GetGoal(c.Request().Context(), middleware.Principal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGoalDTO(goal), "")
}

// ListGoals returns all goals owned by the authenticated user.
func (h *GoalHandler) ListGoals(c echo.Context) error {
	goals, err := h.uc.ListGoals(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGoalDTOs(goals), "")
}

// UpdateGoal applies a partial update to a goal.
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid goal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.UpdateGoalInput{
		Description: req.Description,
		EndDate:     req.EndDate,
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}

	goal, err := h.uc.UpdateGoal(c.Request().Context(), middleware.Principal(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGoalDTO(goal), "Goal updated successfully")
}

// DeleteGoal deletes a goal owned by the authenticated user.
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteGoal(c.Request().Context(), middleware.Principal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Goal deleted successfully")
}
