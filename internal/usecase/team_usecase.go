package usecase

import (
	"context"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTeamInput defines the data required to create a team. The creator
// becomes a team admin.
type CreateTeamInput struct {
	Name string
	City string
}

// JoinTeamInput defines the data for a user joining a team. SquadID is
// optional; membership starts with the member role.
type JoinTeamInput struct {
	SquadID *uuid.UUID
}

// CreateSquadInput defines the data required to create a squad within a team.
type CreateSquadInput struct {
	Name string
}

// CreateTeamWorkoutInput defines a workout template published to a team,
// optionally scoped to a single squad.
type CreateTeamWorkoutInput struct {
	SquadID     *uuid.UUID
	Title       string
	Description string
	Exercises   []entity.Exercise
}

// CreateTeamAssessmentInput defines an assessment template published to a team.
type CreateTeamAssessmentInput struct {
	Title        string
	Instructions string
	Parameters   []entity.AssessmentParameter
}

// TeamUsecase defines team, squad and membership operations, plus the
// team-level workout and assessment templates. Listing and adoption
// require membership; publishing templates and creating squads require a
// team role that may manage content.
type TeamUsecase interface {
	CreateTeam(ctx context.Context, principal *entity.User, input CreateTeamInput) (*entity.Team, error)
	GetTeam(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Team, error)
	ListTeams(ctx context.Context, principal *entity.User) ([]*entity.Team, error)
	JoinTeam(ctx context.Context, principal *entity.User, teamID uuid.UUID, input JoinTeamInput) (*entity.Membership, error)
	CreateSquad(ctx context.Context, principal *entity.User, teamID uuid.UUID, input CreateSquadInput) (*entity.Squad, error)

	CreateTeamWorkout(ctx context.Context, principal *entity.User, teamID uuid.UUID, input CreateTeamWorkoutInput) (*entity.TeamWorkout, error)
	ListTeamWorkouts(ctx context.Context, principal *entity.User, teamID uuid.UUID) ([]*entity.TeamWorkout, error)
	// AdoptTeamWorkout copies a team workout template into a personal
	// workout owned by the principal, linked back to the template.
	AdoptTeamWorkout(ctx context.Context, principal *entity.User, teamID, workoutID uuid.UUID) (*entity.Workout, error)

	CreateTeamAssessment(ctx context.Context, principal *entity.User, teamID uuid.UUID, input CreateTeamAssessmentInput) (*entity.TeamAssessment, error)
	ListTeamAssessments(ctx context.Context, principal *entity.User, teamID uuid.UUID) ([]*entity.TeamAssessment, error)
	// AdoptTeamAssessment copies a team assessment template into a personal
	// assessment owned by the principal, linked back to the template.
	AdoptTeamAssessment(ctx context.Context, principal *entity.User, teamID, assessmentID uuid.UUID) (*entity.Assessment, error)
}
