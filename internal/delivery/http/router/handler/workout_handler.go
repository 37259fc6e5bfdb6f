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

// WorkoutHandler handles personal workout requests.
type WorkoutHandler struct {
	uc     usecase.WorkoutUsecase
	logger *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler.
func NewWorkoutHandler(uc usecase.WorkoutUsecase, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{uc: uc, logger: logger}
}

type createWorkoutRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	Exercises   []entity.Exercise `json:"exercises" validate:"required,min=1"`
}

type updateWorkoutRequest struct {
	Title       *string           `json:"title" validate:"omitempty,max=200"`
	Description *string           `json:"description"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	Exercises   []entity.Exercise `json:"exercises"`
}

type recordWorkoutResultsRequest struct {
	Results []entity.Exercise `json:"results" validate:"required,min=1"`
}

// CreateWorkout handles the workout creation request.
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	var req createWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.CreateWorkout(c.Request().Context(), middleware.Principal(c), usecase.CreateWorkoutInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkoutDTO(workout), "Workout created successfully")
}

// GetWorkout returns a single workout owned by the authenticated user.
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	workout, err := h.uc.GetWorkout(c.Request().Context(), middleware.Principal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkoutDTO(workout), "")
}

// ListWorkouts returns all workouts owned by the authenticated user.
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
	workouts, err := h.uc.ListWorkouts(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkoutDTOs(workouts), "")
}

// UpdateWorkout applies a partial update to a workout.
func (h *WorkoutHandler) UpdateWorkout(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.UpdateWorkout(c.Request().Context(), middleware.Principal(c), id, usecase.UpdateWorkoutInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkoutDTO(workout), "Workout updated successfully")
}

// RecordResults records the performed exercises of a workout.
func (h *WorkoutHandler) RecordResults(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req recordWorkoutResultsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout results input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.RecordWorkoutResults(c.Request().Context(), middleware.Principal(c), id, usecase.RecordWorkoutResultsInput{
		Results: req.Results,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkoutDTO(workout), "Workout results recorded successfully")
}

// DeleteWorkout deletes a workout owned by the authenticated user.
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteWorkout(c.Request().Context(), middleware.Principal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Workout deleted successfully")
}
