package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for team persistence.
var (
	ErrTeamNotFound           = errors.New("team not found")
	ErrSquadNotFound          = errors.New("squad not found")
	ErrMembershipNotFound     = errors.New("membership not found")
	ErrTeamWorkoutNotFound    = errors.New("team workout not found")
	ErrTeamAssessmentNotFound = errors.New("team assessment not found")
)

// TeamRepository defines persistence operations for teams, squads,
// memberships and team-level templates.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *entity.Team) error
	FindTeamByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	ListTeams(ctx context.Context) ([]*entity.Team, error)

	CreateSquad(ctx context.Context, squad *entity.Squad) error
	FindSquadByID(ctx context.Context, id uuid.UUID) (*entity.Squad, error)

	// CreateMembership persists a user joining a team. Storage enforces
	// one membership per (user, team) pair.
	CreateMembership(ctx context.Context, membership *entity.Membership) error
	// FindMembership returns the membership of a user in a team, or
	// ErrMembershipNotFound when the user is not a member.
	FindMembership(ctx context.Context, userID, teamID uuid.UUID) (*entity.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	CreateTeamWorkout(ctx context.Context, workout *entity.TeamWorkout) error
	FindTeamWorkoutByID(ctx context.Context, id uuid.UUID) (*entity.TeamWorkout, error)
	ListTeamWorkouts(ctx context.Context, teamID uuid.UUID) ([]*entity.TeamWorkout, error)

	CreateTeamAssessment(ctx context.Context, assessment *entity.TeamAssessment) error
	FindTeamAssessmentByID(ctx context.Context, id uuid.UUID) (*entity.TeamAssessment, error)
	ListTeamAssessments(ctx context.Context, teamID uuid.UUID) ([]*entity.TeamAssessment, error)
}
