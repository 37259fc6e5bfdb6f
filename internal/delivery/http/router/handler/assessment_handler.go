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

// AssessmentHandler handles personal assessment requests.
type AssessmentHandler struct {
	uc     usecase.AssessmentUsecase
	logger *slog.Logger
}

// NewAssessmentHandler is the constructor for AssessmentHandler.
func NewAssessmentHandler(uc usecase.AssessmentUsecase, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{uc: uc, logger: logger}
}

type createAssessmentRequest struct {
	Title        string                       `json:"title" validate:"required,max=200"`
	Instructions string                       `json:"instructions"`
	Parameters   []entity.AssessmentParameter `json:"parameters" validate:"required,min=1"`
}

type updateAssessmentRequest struct {
	Title        *string                      `json:"title" validate:"omitempty,max=200"`
	Instructions *string                      `json:"instructions"`
	Parameters   []entity.AssessmentParameter `json:"parameters"`
}

type recordAssessmentResultsRequest struct {
	Results []entity.MetricResult `json:"results" validate:"required,min=1"`
	TakenAt *time.Time            `json:"taken_at"`
}

// CreateAssessment handles the assessment creation request.
func (h *AssessmentHandler) CreateAssessment(c echo.Context) error {
	var req createAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assessment, err := h.uc.CreateAssessment(c.Request().Context(), middleware.Principal(c), usecase.CreateAssessmentInput{
		Title:        req.Title,
		Instructions: req.Instructions,
		Parameters:   req.Parameters,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAssessmentDTO(assessment), "Assessment created successfully")
}

// GetAssessment returns a single assessment owned by the authenticated user.
func (h *AssessmentHandler) GetAssessment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	assessment, err := h.uc.GetAssessment(c.Request().Context(), middleware.Principal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssessmentDTO(assessment), "")
}

// ListAssessments returns all assessments owned by the authenticated user.
func (h *AssessmentHandler) ListAssessments(c echo.Context) error {
	assessments, err := h.uc.ListAssessments(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssessmentDTOs(assessments), "")
}

// UpdateAssessment applies a partial update to an assessment definition.
func (h *AssessmentHandler) UpdateAssessment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assessment, err := h.uc.UpdateAssessment(c.Request().Context(), middleware.Principal(c), id, usecase.UpdateAssessmentInput{
		Title:        req.Title,
		Instructions: req.Instructions,
		Parameters:   req.Parameters,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssessmentDTO(assessment), "Assessment updated successfully")
}

// RecordResults records the measured values of a taken assessment.
func (h *AssessmentHandler) RecordResults(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req recordAssessmentResultsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assessment results input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assessment, err := h.uc.RecordAssessmentResults(c.Request().Context(), middleware.Principal(c), id, usecase.RecordAssessmentResultsInput{
		Results: req.Results,
		TakenAt: req.TakenAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssessmentDTO(assessment), "Assessment results recorded successfully")
}

// DeleteAssessment deletes an assessment owned by the authenticated user.
func (h *AssessmentHandler) DeleteAssessment(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAssessment(c.Request().Context(), middleware.Principal(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Assessment deleted successfully")
}
