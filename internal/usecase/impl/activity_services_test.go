package impl

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_CreateGoal_DefaultsToPending(t *testing.T) {
	service := NewGoalService(GoalServiceParams{GoalRepo: newFakeGoalRepo(), Logger: newDiscardLogger()})
	principal := testPrincipal()

	goal, err := service.CreateGoal(context.Background(), principal, usecase.CreateGoalInput{
		Description: "Squat 2x bodyweight",
		StartDate:   time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.GoalPending, goal.Status)
}

func TestGoalService_CreateGoal_EndBeforeStart(t *testing.T) {
	service := NewGoalService(GoalServiceParams{GoalRepo: newFakeGoalRepo(), Logger: newDiscardLogger()})
	start := time.Now()
	end := start.Add(-24 * time.Hour)

	_, err := service.CreateGoal(context.Background(), testPrincipal(), usecase.CreateGoalInput{
		Description: "Squat 2x bodyweight",
		StartDate:   start,
		EndDate:     &end,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGoalService_UpdateGoal_StatusTransition(t *testing.T) {
	service := NewGoalService(GoalServiceParams{GoalRepo: newFakeGoalRepo(), Logger: newDiscardLogger()})
	ctx := context.Background()
	principal := testPrincipal()

	goal, err := service.CreateGoal(ctx, principal, usecase.CreateGoalInput{
		Description: "Squat 2x bodyweight",
		StartDate:   time.Now(),
	})
	require.NoError(t, err)

	completed := entity.GoalCompleted
	updated, err := service.UpdateGoal(ctx, principal, goal.ID, usecase.UpdateGoalInput{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, entity.GoalCompleted, updated.Status)

	bogus := entity.GoalStatus("abandoned")
	_, err = service.UpdateGoal(ctx, principal, goal.ID, usecase.UpdateGoalInput{Status: &bogus})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckInService_CreateAndListByRange(t *testing.T) {
	service := NewCheckInService(CheckInServiceParams{CheckInRepo: newFakeCheckInRepo(), Logger: newDiscardLogger()})
	ctx := context.Background()
	principal := testPrincipal()

	_, err := service.CreateCheckIn(ctx, principal, usecase.CreateCheckInInput{
		Mood: map[string]any{"energy": 7, "sleep": 8},
	})
	require.NoError(t, err)

	all, err := service.ListCheckIns(ctx, principal, usecase.ListCheckInsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	past := time.Now().Add(-time.Hour)
	old, err := service.ListCheckIns(ctx, principal, usecase.ListCheckInsInput{To: &past})
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestCheckInService_CreateCheckIn_RequiresMood(t *testing.T) {
	service := NewCheckInService(CheckInServiceParams{CheckInRepo: newFakeCheckInRepo(), Logger: newDiscardLogger()})

	_, err := service.CreateCheckIn(context.Background(), testPrincipal(), usecase.CreateCheckInInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckInService_DeleteCheckIn_OwnershipHiddenAsNotFound(t *testing.T) {
	service := NewCheckInService(CheckInServiceParams{CheckInRepo: newFakeCheckInRepo(), Logger: newDiscardLogger()})
	ctx := context.Background()
	owner := testPrincipal()

	checkIn, err := service.CreateCheckIn(ctx, owner, usecase.CreateCheckInInput{
		Mood: map[string]any{"energy": 7},
	})
	require.NoError(t, err)

	err = service.DeleteCheckIn(ctx, testPrincipal(), checkIn.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, service.DeleteCheckIn(ctx, owner, checkIn.ID))
}

func TestJournalService_CreateUpdateDelete(t *testing.T) {
	service := NewJournalService(JournalServiceParams{JournalRepo: newFakeJournalRepo(), Logger: newDiscardLogger()})
	ctx := context.Background()
	principal := testPrincipal()

	journal, err := service.CreateJournalEntry(ctx, principal, usecase.CreateJournalInput{
		Entry: "Felt strong today.",
	})
	require.NoError(t, err)

	updated, err := service.UpdateJournalEntry(ctx, principal, journal.ID, usecase.UpdateJournalInput{
		Entry: "Felt strong today, new squat PR.",
	})
	require.NoError(t, err)
	assert.Contains(t, updated.Entry, "squat PR")

	require.NoError(t, service.DeleteJournalEntry(ctx, principal, journal.ID))

	_, err = service.GetJournalEntry(ctx, principal, journal.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestJournalService_MissingEntryTranslatesRepositorySentinel(t *testing.T) {
	journalRepo := newFakeJournalRepo()
	service := NewJournalService(JournalServiceParams{JournalRepo: journalRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	unknownID := uuid.New()

	_, err := journalRepo.FindByID(ctx, unknownID)
	require.ErrorIs(t, err, repository.ErrJournalNotFound)

	_, err = service.GetJournalEntry(ctx, testPrincipal(), unknownID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestJournalService_CreateJournalEntry_RequiresText(t *testing.T) {
	service := NewJournalService(JournalServiceParams{JournalRepo: newFakeJournalRepo(), Logger: newDiscardLogger()})

	_, err := service.CreateJournalEntry(context.Background(), testPrincipal(), usecase.CreateJournalInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
