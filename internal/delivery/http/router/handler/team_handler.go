package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/domain/entity"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeamHandler handles team, squad and membership requests, plus the
// team-level workout and assessment templates.
type TeamHandler struct {
	uc     usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler.
func NewTeamHandler(uc usecase.TeamUsecase, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{uc: uc, logger: logger}
}

type createTeamRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	City string `json:"city" validate:"max=120"`
}

type joinTeamRequest struct {
	SquadID *uuid.UUID `json:"squad_id"`
}

type createSquadRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type createTeamWorkoutRequest struct {
	SquadID     *uuid.UUID        `json:"squad_id"`
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description"`
	Exercises   []entity.Exercise `json:"exercises" validate:"required,min=1"`
}

type createTeamAssessmentRequest struct {
	Title        string                       `json:"title" validate:"required,max=200"`
	Instructions string                       `json:"instructions"`
	Parameters   []entity.AssessmentParameter `json:"parameters" validate:"required,min=1"`
}

// CreateTeam creates a team; the creator becomes a team admin.
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	team, err := h.uc.CreateTeam(c.Request().Context(), middleware.Principal(c), usecase.CreateTeamInput{
		Name: req.Name,
		City: req.City,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTeamDTO(team), "Team created successfully")
}

// GetTeam returns a single team with its squads.
func (h *TeamHandler) GetTeam(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	team, err := h.uc.GetTeam(c.Request().Context(), middleware.Principal(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTeamDTO(team), "")
}

// ListTeams returns all teams.
func (h *TeamHandler) ListTeams(c echo.Context) error {
	teams, err := h.uc.ListTeams(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTeamDTOs(teams), "")
}

// JoinTeam adds the authenticated user to a team as a member.
func (h *TeamHandler) JoinTeam(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req joinTeamRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}

	membership, err := h.uc.JoinTeam(c.Request().Context(), middleware.Principal(c), teamID, usecase.JoinTeamInput{
		SquadID: req.SquadID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMembershipDTO(membership), "Joined team successfully")
}

// CreateSquad creates a squad within a team. Requires a content-managing
// team role.
func (h *TeamHandler) CreateSquad(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req createSquadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid squad input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	squad, err := h.uc.CreateSquad(c.Request().Context(), middleware.Principal(c), teamID, usecase.CreateSquadInput{
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSquadDTO(squad), "Squad created successfully")
}

// CreateTeamWorkout publishes a workout template to a team. Requires a
// content-managing team role.
func (h *TeamHandler) CreateTeamWorkout(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req createTeamWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team workout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	template, err := h.uc.CreateTeamWorkout(c.Request().Context(), middleware.Principal(c), teamID, usecase.CreateTeamWorkoutInput{
		SquadID:     req.SquadID,
		Title:       req.Title,
		Description: req.Description,
		Exercises:   req.Exercises,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTeamWorkoutDTO(template), "Team workout published successfully")
}

// ListTeamWorkouts returns a team's workout templates. Requires membership.
func (h *TeamHandler) ListTeamWorkouts(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	templates, err := h.uc.ListTeamWorkouts(c.Request().Context(), middleware.Principal(c), teamID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTeamWorkoutDTOs(templates), "")
}

// AdoptTeamWorkout copies a team workout template into a personal workout.
func (h *TeamHandler) AdoptTeamWorkout(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	workoutID, err := pathUUID(c, "workoutId")
	if err != nil {
		return err
	}

	workout, err := h.uc.AdoptTeamWorkout(c.Request().Context(), middleware.Principal(c), teamID, workoutID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkoutDTO(workout), "Team workout adopted successfully")
}

// CreateTeamAssessment publishes an assessment template to a team.
// Requires a content-managing team role.
func (h *TeamHandler) CreateTeamAssessment(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req createTeamAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team assessment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	template, err := h.uc.CreateTeamAssessment(c.Request().Context(), middleware.Principal(c), teamID, usecase.CreateTeamAssessmentInput{
		Title:        req.Title,
		Instructions: req.Instructions,
		Parameters:   req.Parameters,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTeamAssessmentDTO(template), "Team assessment published successfully")
}

// ListTeamAssessments returns a team's assessment templates. Requires
// membership.
func (h *TeamHandler) ListTeamAssessments(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	templates, err := h.uc.ListTeamAssessments(c.Request().Context(), middleware.Principal(c), teamID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTeamAssessmentDTOs(templates), "")
}

// AdoptTeamAssessment copies a team assessment template into a personal
// assessment.
func (h *TeamHandler) AdoptTeamAssessment(c echo.Context) error {
	teamID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	assessmentID, err := pathUUID(c, "assessmentId")
	if err != nil {
		return err
	}

	assessment, err := h.uc.AdoptTeamAssessment(c.Request().Context(), middleware.Principal(c), teamID, assessmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAssessmentDTO(assessment), "Team assessment adopted successfully")
}
