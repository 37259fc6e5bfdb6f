package impl

import (
	"context"
	"testing"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teamServiceFixtures struct {
	service        usecase.TeamUsecase
	teamRepo       *fakeTeamRepo
	workoutRepo    *fakeWorkoutRepo
	assessmentRepo *fakeAssessmentRepo
}

func createTestTeamService() teamServiceFixtures {
	teamRepo := newFakeTeamRepo()
	workoutRepo := newFakeWorkoutRepo()
	assessmentRepo := newFakeAssessmentRepo()
	txManager := &fakeTxManager{factory: &fakeRepoFactory{
		teamRepo:    teamRepo,
		workoutRepo: workoutRepo,
	}}

	service := NewTeamService(TeamServiceParams{
		TxManager:      txManager,
		TeamRepo:       teamRepo,
		WorkoutRepo:    workoutRepo,
		AssessmentRepo: assessmentRepo,
		Logger:         newDiscardLogger(),
	})

	return teamServiceFixtures{
		service:        service,
		teamRepo:       teamRepo,
		workoutRepo:    workoutRepo,
		assessmentRepo: assessmentRepo,
	}
}

func TestTeamService_CreateTeam_CreatorBecomesAdmin(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	creator := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, creator, usecase.CreateTeamInput{
		Name: "Track Club",
		City: "Oslo",
	})

	require.NoError(t, err)
	membership, err := fx.teamRepo.FindMembership(ctx, creator.ID, team.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TeamRoleAdmin, membership.Role)
}

func TestTeamService_CreateTeam_DuplicateName(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()

	_, err := fx.service.CreateTeam(ctx, testPrincipal(), usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)

	_, err = fx.service.CreateTeam(ctx, testPrincipal(), usecase.CreateTeamInput{Name: "Track Club"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTeamNameTaken)
}

func TestTeamService_JoinTeam_SecondJoinRejected(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()
	athlete := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)

	membership, err := fx.service.JoinTeam(ctx, athlete, team.ID, usecase.JoinTeamInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.TeamRoleMember, membership.Role)

	_, err = fx.service.JoinTeam(ctx, athlete, team.ID, usecase.JoinTeamInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyMember)
}

func TestTeamService_JoinTeam_SquadMustBelongToTeam(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()
	athlete := testPrincipal()

	teamA, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Team A"})
	require.NoError(t, err)
	teamB, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Team B"})
	require.NoError(t, err)

	squadB, err := fx.service.CreateSquad(ctx, coach, teamB.ID, usecase.CreateSquadInput{Name: "U18"})
	require.NoError(t, err)

	_, err = fx.service.JoinTeam(ctx, athlete, teamA.ID, usecase.JoinTeamInput{SquadID: &squadB.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTeamService_CreateTeamWorkout_RequiresCoachRole(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()
	athlete := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)
	_, err = fx.service.JoinTeam(ctx, athlete, team.ID, usecase.JoinTeamInput{})
	require.NoError(t, err)

	input := usecase.CreateTeamWorkoutInput{
		Title:     "Intervals",
		Exercises: []entity.Exercise{benchPress()},
	}

	_, err = fx.service.CreateTeamWorkout(ctx, athlete, team.ID, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	workout, err := fx.service.CreateTeamWorkout(ctx, coach, team.ID, input)
	require.NoError(t, err)
	assert.Equal(t, coach.ID, workout.CreatedBy)
}

func TestTeamService_ListTeamWorkouts_RequiresMembership(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()
	outsider := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)

	_, err = fx.service.ListTeamWorkouts(ctx, outsider, team.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotTeamMember)
}

func TestTeamService_AdoptTeamWorkout(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()
	athlete := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)
	_, err = fx.service.JoinTeam(ctx, athlete, team.ID, usecase.JoinTeamInput{})
	require.NoError(t, err)

	template, err := fx.service.CreateTeamWorkout(ctx, coach, team.ID, usecase.CreateTeamWorkoutInput{
		Title:     "Intervals",
		Exercises: []entity.Exercise{benchPress()},
	})
	require.NoError(t, err)

	workout, err := fx.service.AdoptTeamWorkout(ctx, athlete, team.ID, template.ID)
	require.NoError(t, err)
	assert.Equal(t, athlete.ID, workout.UserID)
	require.NotNil(t, workout.TeamWorkoutID)
	assert.Equal(t, template.ID, *workout.TeamWorkoutID)
	assert.Equal(t, template.Exercises, workout.Exercises)
}

func TestTeamService_AdoptTeamAssessment(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()
	athlete := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)
	_, err = fx.service.JoinTeam(ctx, athlete, team.ID, usecase.JoinTeamInput{})
	require.NoError(t, err)

	template, err := fx.service.CreateTeamAssessment(ctx, coach, team.ID, usecase.CreateTeamAssessmentInput{
		Title: "Sprint test",
		Parameters: []entity.AssessmentParameter{{
			Name:    "40m sprint",
			Metrics: []entity.AssessmentMetric{{Type: entity.MetricTime, Unit: "s"}},
		}},
	})
	require.NoError(t, err)

	assessment, err := fx.service.AdoptTeamAssessment(ctx, athlete, team.ID, template.ID)
	require.NoError(t, err)
	assert.Equal(t, athlete.ID, assessment.UserID)
	require.NotNil(t, assessment.TeamAssessmentID)
	assert.Equal(t, template.ID, *assessment.TeamAssessmentID)
}

func TestTeamService_CreateSquad_DuplicateNameInTeam(t *testing.T) {
	fx := createTestTeamService()
	ctx := context.Background()
	coach := testPrincipal()

	team, err := fx.service.CreateTeam(ctx, coach, usecase.CreateTeamInput{Name: "Track Club"})
	require.NoError(t, err)

	_, err = fx.service.CreateSquad(ctx, coach, team.ID, usecase.CreateSquadInput{Name: "U18"})
	require.NoError(t, err)

	_, err = fx.service.CreateSquad(ctx, coach, team.ID, usecase.CreateSquadInput{Name: "U18"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSquadNameTaken)
}
