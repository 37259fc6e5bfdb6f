package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGoalInput defines the data required to create a goal.
type CreateGoalInput struct {
	Description string
	StartDate   time.Time
	EndDate     *time.Time
}

// UpdateGoalInput defines a partial update to a goal. Nil fields are left
// unchanged.
type UpdateGoalInput struct {
	Description *string
	EndDate     *time.Time
	Status      *entity.GoalStatus
}

// GoalUsecase defines goal operations scoped to the authenticated principal.
type GoalUsecase interface {
	CreateGoal(ctx context.Context, principal *entity.User, input CreateGoalInput) (*entity.Goal, error)
	GetGoal(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Goal, error)
	ListGoals(ctx context.Context, principal *entity.User) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, principal *entity.User, id uuid.UUID, input UpdateGoalInput) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, principal *entity.User, id uuid.UUID) error
}
