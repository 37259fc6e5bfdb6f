package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workoutService implements the WorkoutUsecase interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	logger      *slog.Logger
}

// WorkoutServiceParams holds dependencies for workoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	WorkoutRepo repository.WorkoutRepository
	Logger      *slog.Logger
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		workoutRepo: params.WorkoutRepo,
		logger:      params.Logger,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWorkout persists a new workout owned by the principal.
func (srv *workoutService) CreateWorkout(ctx context.Context, principal *entity.User, input usecase.CreateWorkoutInput) (*entity.Workout, error) {
	if len(input.Exercises) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one exercise is required")
	}

	workout := &entity.Workout{
		UserID:      principal.ID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Exercises:   input.Exercises,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		srv.log(ctx).Error("Failed to create workout", slog.Any("userID", principal.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create workout")
	}

	srv.log(ctx).Debug("Workout created", slog.Any("workoutID", workout.ID))

	return workout, nil
}

// GetWorkout loads a workout owned by the principal. A workout owned by
// someone else is reported as not found, never as forbidden.
func (srv *workoutService) GetWorkout(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Workout, error) {
	return srv.loadOwned(ctx, principal, id)
}

// ListWorkouts returns all workouts owned by the principal.
func (srv *workoutService) ListWorkouts(ctx context.Context, principal *entity.User) ([]*entity.Workout, error) {
	workouts, err := srv.workoutRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return workouts, nil
}

// UpdateWorkout applies a partial update and appends the change to the
// workout's update log.
func (srv *workoutService) UpdateWorkout(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.UpdateWorkoutInput) (*entity.Workout, error) {
	workout, err := srv.loadOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	changed := []string{}
	if input.Title != nil && *input.Title != workout.Title {
		workout.Title = *input.Title
		changed = append(changed, "title")
	}
	if input.Description != nil && *input.Description != workout.Description {
		workout.Description = *input.Description
		changed = append(changed, "description")
	}
	if input.StartDate != nil {
		workout.StartDate = input.StartDate
		changed = append(changed, "start_date")
	}
	if input.EndDate != nil {
		workout.EndDate = input.EndDate
		changed = append(changed, "end_date")
	}
	if input.Exercises != nil {
		workout.Exercises = input.Exercises
		changed = append(changed, "exercises")
	}

	if len(changed) == 0 {
		return workout, nil
	}

	workout.UpdateLog = append(workout.UpdateLog, entity.UpdateLogEntry{
		At:     time.Now().UTC(),
		Change: "updated",
		Meta:   map[string]any{"fields": changed},
	})

	if err := srv.workoutRepo.Update(ctx, workout); err != nil {
		srv.log(ctx).Error("Failed to update workout", slog.Any("workoutID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update workout")
	}

	return workout, nil
}

// RecordWorkoutResults stores the performed exercises of a workout.
func (srv *workoutService) RecordWorkoutResults(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.RecordWorkoutResultsInput) (*entity.Workout, error) {
	if len(input.Results) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one result exercise is required")
	}

	workout, err := srv.loadOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	workout.Results = input.Results
	workout.UpdateLog = append(workout.UpdateLog, entity.UpdateLogEntry{
		At:     time.Now().UTC(),
		Change: "results_recorded",
	})

	if err := srv.workoutRepo.Update(ctx, workout); err != nil {
		srv.log(ctx).Error("Failed to record workout results", slog.Any("workoutID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record workout results")
	}

	return workout, nil
}

// DeleteWorkout removes a workout owned by the principal.
func (srv *workoutService) DeleteWorkout(ctx context.Context, principal *entity.User, id uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := srv.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("workout not found")
		}

		return errors.Wrap(err, "failed to delete workout")
	}

	return nil
}

func (srv *workoutService) loadOwned(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Workout, error) {
	workout, err := srv.workoutRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("workout not found")
		}

		return nil, errors.Wrap(err, "failed to load workout")
	}

	// Ownership failures look identical to missing rows so the API never
	// confirms that someone else's resource exists.
	if workout.UserID != principal.ID {
		return nil, domainerrors.ErrNotFound.WrapMessage("workout not found")
	}

	return workout, nil
}
