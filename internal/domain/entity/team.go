package entity

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a club or organization that athletes belong to.
// Team names are globally unique.
type Team struct {
	ID        uuid.UUID
	Name      string
	City      string
	CreatedAt time.Time
	Squads    []*Squad // Squads defined within this team, if loaded.
}

// Squad is a named subgroup within a team (e.g. "U18", "Sprinters").
// Squad names are unique per team.
type Squad struct {
	ID     uuid.UUID
	TeamID uuid.UUID
	Name   string
}

// Membership links a user to a team, optionally placing them in a squad,
// and records the role they hold within that team.
type Membership struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	TeamID   uuid.UUID
	SquadID  *uuid.UUID // nil when the member is not assigned to a squad.
	Role     TeamRole
	JoinedAt time.Time
}

// TeamWorkout is a workout template published to a team by a coach.
// Members adopt it into a personal Workout of their own.
type TeamWorkout struct {
	ID          uuid.UUID
	TeamID      uuid.UUID
	SquadID     *uuid.UUID // nil when the template targets the whole team.
	CreatedBy   uuid.UUID
	Title       string
	Description string
	Exercises   []Exercise
	CreatedAt   time.Time
}

// TeamAssessment is an assessment template published to a team by a coach.
type TeamAssessment struct {
	ID           uuid.UUID
	TeamID       uuid.UUID
	CreatedBy    uuid.UUID
	Title        string
	Instructions string
	Parameters   []AssessmentParameter
	CreatedAt    time.Time
}
