package repository

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorkoutNotFound is returned when a workout does not exist.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository defines persistence operations for workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *entity.Workout) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workout, error)
	// ListByUserBetween returns the user's workouts whose creation time falls
	// within [from, to). Used by the summary generator.
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Workout, error)
	Update(ctx context.Context, workout *entity.Workout) error
	Delete(ctx context.Context, id uuid.UUID) error
}
