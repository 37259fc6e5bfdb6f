package impl

import (
	"context"
	"testing"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWorkoutService() (usecase.WorkoutUsecase, *fakeWorkoutRepo) {
	workoutRepo := newFakeWorkoutRepo()
	service := NewWorkoutService(WorkoutServiceParams{
		WorkoutRepo: workoutRepo,
		Logger:      newDiscardLogger(),
	})

	return service, workoutRepo
}

func testPrincipal() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Name:  "Test Athlete",
		Email: "athlete@example.com",
		Role:  entity.RoleAthlete,
	}
}

func benchPress() entity.Exercise {
	weight := 80.0

	return entity.Exercise{
		Name: "Bench press",
		Sets: []entity.SetEntry{
			{Set: 1, Reps: 5, Weight: &weight},
			{Set: 2, Reps: 5, Weight: &weight},
		},
	}
}

func TestWorkoutService_CreateWorkout_Success(t *testing.T) {
	service, _ := createTestWorkoutService()
	principal := testPrincipal()

	workout, err := service.CreateWorkout(context.Background(), principal, usecase.CreateWorkoutInput{
		Title:     "Push day",
		Exercises: []entity.Exercise{benchPress()},
	})

	require.NoError(t, err)
	assert.Equal(t, principal.ID, workout.UserID)
	assert.NotEqual(t, uuid.Nil, workout.ID)
}

func TestWorkoutService_CreateWorkout_RequiresExercises(t *testing.T) {
	service, _ := createTestWorkoutService()

	_, err := service.CreateWorkout(context.Background(), testPrincipal(), usecase.CreateWorkoutInput{
		Title: "Push day",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWorkoutService_GetWorkout_OwnershipHiddenAsNotFound(t *testing.T) {
	service, _ := createTestWorkoutService()
	ctx := context.Background()
	owner := testPrincipal()
	stranger := testPrincipal()

	workout, err := service.CreateWorkout(ctx, owner, usecase.CreateWorkoutInput{
		Title:     "Push day",
		Exercises: []entity.Exercise{benchPress()},
	})
	require.NoError(t, err)

	_, err = service.GetWorkout(ctx, stranger, workout.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound,
		"another user's workout must look missing, not forbidden")

	got, err := service.GetWorkout(ctx, owner, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, workout.ID, got.ID)
}

func TestWorkoutService_UpdateWorkout_AppendsUpdateLog(t *testing.T) {
	service, _ := createTestWorkoutService()
	ctx := context.Background()
	principal := testPrincipal()

	workout, err := service.CreateWorkout(ctx, principal, usecase.CreateWorkoutInput{
		Title:     "Push day",
		Exercises: []entity.Exercise{benchPress()},
	})
	require.NoError(t, err)

	newTitle := "Heavy push day"
	updated, err := service.UpdateWorkout(ctx, principal, workout.ID, usecase.UpdateWorkoutInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	require.Len(t, updated.UpdateLog, 1)
	assert.Equal(t, "updated", updated.UpdateLog[0].Change)
}

func TestWorkoutService_UpdateWorkout_NoChangesNoLog(t *testing.T) {
	service, _ := createTestWorkoutService()
	ctx := context.Background()
	principal := testPrincipal()

	workout, err := service.CreateWorkout(ctx, principal, usecase.CreateWorkoutInput{
		Title:     "Push day",
		Exercises: []entity.Exercise{benchPress()},
	})
	require.NoError(t, err)

	updated, err := service.UpdateWorkout(ctx, principal, workout.ID, usecase.UpdateWorkoutInput{})
	require.NoError(t, err)
	assert.Empty(t, updated.UpdateLog)
}

func TestWorkoutService_RecordWorkoutResults(t *testing.T) {
	service, _ := createTestWorkoutService()
	ctx := context.Background()
	principal := testPrincipal()

	workout, err := service.CreateWorkout(ctx, principal, usecase.CreateWorkoutInput{
		Title:     "Push day",
		Exercises: []entity.Exercise{benchPress()},
	})
	require.NoError(t, err)

	updated, err := service.RecordWorkoutResults(ctx, principal, workout.ID, usecase.RecordWorkoutResultsInput{
		Results: []entity.Exercise{benchPress()},
	})

	require.NoError(t, err)
	require.Len(t, updated.Results, 1)
	require.Len(t, updated.UpdateLog, 1)
	assert.Equal(t, "results_recorded", updated.UpdateLog[0].Change)
}

func TestWorkoutService_DeleteWorkout(t *testing.T) {
	service, _ := createTestWorkoutService()
	ctx := context.Background()
	principal := testPrincipal()

	workout, err := service.CreateWorkout(ctx, principal, usecase.CreateWorkoutInput{
		Title:     "Push day",
		Exercises: []entity.Exercise{benchPress()},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteWorkout(ctx, principal, workout.ID))

	err = service.DeleteWorkout(ctx, principal, workout.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
