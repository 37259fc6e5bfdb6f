package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkoutInput defines the data required to create a workout.
type CreateWorkoutInput struct {
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Exercises   []entity.Exercise
}

// UpdateWorkoutInput defines a partial update to a workout. Nil fields are
// left unchanged; every applied change is appended to the workout's update log.
type UpdateWorkoutInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Exercises   []entity.Exercise
}

// RecordWorkoutResultsInput carries the performed exercises of a workout.
type RecordWorkoutResultsInput struct {
	Results []entity.Exercise
}

// WorkoutUsecase defines workout operations scoped to the authenticated
// principal. Every accessor enforces ownership; a workout belonging to
// another user is reported as not found.
type WorkoutUsecase interface {
	CreateWorkout(ctx context.Context, principal *entity.User, input CreateWorkoutInput) (*entity.Workout, error)
	GetWorkout(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Workout, error)
	ListWorkouts(ctx context.Context, principal *entity.User) ([]*entity.Workout, error)
	UpdateWorkout(ctx context.Context, principal *entity.User, id uuid.UUID, input UpdateWorkoutInput) (*entity.Workout, error)
	RecordWorkoutResults(ctx context.Context, principal *entity.User, id uuid.UUID, input RecordWorkoutResultsInput) (*entity.Workout, error)
	DeleteWorkout(ctx context.Context, principal *entity.User, id uuid.UUID) error
}
