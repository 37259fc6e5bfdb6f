// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	WorkoutHandler    *handler.WorkoutHandler
	AssessmentHandler *handler.AssessmentHandler
	GoalHandler       *handler.GoalHandler
	CheckInHandler    *handler.CheckInHandler
	JournalHandler    *handler.JournalHandler
	SummaryHandler    *handler.SummaryHandler
	TeamHandler       *handler.TeamHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AuthHandler.Signup)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Everything below requires a valid access token.
	userGroup := e.Group("/users", r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.params.UserHandler.GetProfile)
	}

	workoutGroup := e.Group("/workouts", r.params.AuthMiddleware.Authenticate)
	{
		workoutGroup.POST("", r.params.WorkoutHandler.CreateWorkout)
		workoutGroup.GET("", r.params.WorkoutHandler.ListWorkouts)
		workoutGroup.GET("/:id", r.params.WorkoutHandler.GetWorkout)
		workoutGroup.PUT("/:id", r.params.WorkoutHandler.UpdateWorkout)
		workoutGroup.POST("/:id/results", r.params.WorkoutHandler.RecordResults)
		workoutGroup.DELETE("/:id", r.params.WorkoutHandler.DeleteWorkout)
	}

	assessmentGroup := e.Group("/assessments", r.params.AuthMiddleware.Authenticate)
	{
		assessmentGroup.POST("", r.params.AssessmentHandler.CreateAssessment)
		assessmentGroup.GET("", r.params.AssessmentHandler.ListAssessments)
		assessmentGroup.GET("/:id", r.params.AssessmentHandler.GetAssessment)
		assessmentGroup.PUT("/:id", r.params.AssessmentHandler.UpdateAssessment)
		assessmentGroup.POST("/:id/results", r.params.AssessmentHandler.RecordResults)
		assessmentGroup.DELETE("/:id", r.params.AssessmentHandler.DeleteAssessment)
	}

	goalGroup := e.Group("/goals", r.params.AuthMiddleware.Authenticate)
	{
		goalGroup.POST("", r.params.GoalHandler.CreateGoal)
		goalGroup.GET("", r.params.GoalHandler.ListGoals)
		goalGroup.GET("/:id", r.params.GoalHandler.GetGoal)
		goalGroup.PUT("/:id", r.params.GoalHandler.UpdateGoal)
		goalGroup.DELETE("/:id", r.params.GoalHandler.DeleteGoal)
	}

	checkInGroup := e.Group("/checkins", r.params.AuthMiddleware.Authenticate)
	{
		checkInGroup.POST("", r.params.CheckInHandler.CreateCheckIn)
		checkInGroup.GET("", r.params.CheckInHandler.ListCheckIns)
		checkInGroup.DELETE("/:id", r.params.CheckInHandler.DeleteCheckIn)
	}

	journalGroup := e.Group("/journal", r.params.AuthMiddleware.Authenticate)
	{
		journalGroup.POST("", r.params.JournalHandler.CreateEntry)
		journalGroup.GET("", r.params.JournalHandler.ListEntries)
		journalGroup.GET("/:id", r.params.JournalHandler.GetEntry)
		journalGroup.PUT("/:id", r.params.JournalHandler.UpdateEntry)
		journalGroup.DELETE("/:id", r.params.JournalHandler.DeleteEntry)
	}

	summaryGroup := e.Group("/summaries", r.params.AuthMiddleware.Authenticate)
	{
		summaryGroup.GET("", r.params.SummaryHandler.ListSummaries)
		summaryGroup.GET("/:id", r.params.SummaryHandler.GetSummary)
	}

	teamGroup := e.Group("/teams", r.params.AuthMiddleware.Authenticate)
	{
		teamGroup.POST("", r.params.TeamHandler.CreateTeam)
		teamGroup.GET("", r.params.TeamHandler.ListTeams)
		teamGroup.GET("/:id", r.params.TeamHandler.GetTeam)
		teamGroup.POST("/:id/join", r.params.TeamHandler.JoinTeam)
		teamGroup.POST("/:id/squads", r.params.TeamHandler.CreateSquad)

		teamGroup.POST("/:id/workouts", r.params.TeamHandler.CreateTeamWorkout)
		teamGroup.GET("/:id/workouts", r.params.TeamHandler.ListTeamWorkouts)
		teamGroup.POST("/:id/workouts/:workoutId/adopt", r.params.TeamHandler.AdoptTeamWorkout)

		teamGroup.POST("/:id/assessments", r.params.TeamHandler.CreateTeamAssessment)
		teamGroup.GET("/:id/assessments", r.params.TeamHandler.ListTeamAssessments)
		teamGroup.POST("/:id/assessments/:assessmentId/adopt", r.params.TeamHandler.AdoptTeamAssessment)
	}
}
