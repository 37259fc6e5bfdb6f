package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGoalNotFound is returned when a goal does not exist.
var ErrGoalNotFound = errors.New("goal not found")

// GoalRepository defines persistence operations for goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
