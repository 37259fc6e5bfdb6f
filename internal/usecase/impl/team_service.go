package impl

import (
	"context"
	"log/slog"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// teamService implements the TeamUsecase interface.
type teamService struct {
	txManager      repository.TransactionManager
	teamRepo       repository.TeamRepository
	workoutRepo    repository.WorkoutRepository
	assessmentRepo repository.AssessmentRepository
	logger         *slog.Logger
}

// TeamServiceParams holds dependencies for teamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	TeamRepo       repository.TeamRepository
	WorkoutRepo    repository.WorkoutRepository
	AssessmentRepo repository.AssessmentRepository
	Logger         *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	return &teamService{
		txManager:      params.TxManager,
		teamRepo:       params.TeamRepo,
		workoutRepo:    params.WorkoutRepo,
		assessmentRepo: params.AssessmentRepo,
		logger:         params.Logger,
	}
}

func (srv *teamService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTeam creates a team and enrolls the creator as a team admin in a
// single transaction, so a team can never exist without an administrator.
func (srv *teamService) CreateTeam(ctx context.Context, principal *entity.User, input usecase.CreateTeamInput) (*entity.Team, error) {
	team := &entity.Team{
		Name: input.Name,
		City: input.City,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		teamRepo := repoFactory.TeamRepo()

		if err := teamRepo.CreateTeam(ctx, team); err != nil {
			return err
		}

		membership := &entity.Membership{
			UserID: principal.ID,
			TeamID: team.ID,
			Role:   entity.TeamRoleAdmin,
		}

		return teamRepo.CreateMembership(ctx, membership)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create team", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Team created", slog.Any("teamID", team.ID), slog.Any("createdBy", principal.ID))

	return team, nil
}

// GetTeam loads a team with its squads. Any authenticated user may view a
// team's profile.
func (srv *teamService) GetTeam(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Team, error) {
	team, err := srv.teamRepo.FindTeamByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("team not found")
		}

		return nil, errors.Wrap(err, "failed to load team")
	}

	return team, nil
}

// ListTeams returns all teams.
func (srv *teamService) ListTeams(ctx context.Context, principal *entity.User) ([]*entity.Team, error) {
	teams, err := srv.teamRepo.ListTeams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	return teams, nil
}

// JoinTeam enrolls the principal as a member, optionally into a squad of
// that team. The storage unique index rejects a second membership.
func (srv *teamService) JoinTeam(ctx context.Context, principal *entity.User, teamID uuid.UUID, input usecase.JoinTeamInput) (*entity.Membership, error) {
	if _, err := srv.teamRepo.FindTeamByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("team not found")
		}

		return nil, errors.Wrap(err, "failed to load team")
	}

	if input.SquadID != nil {
		squad, err := srv.teamRepo.FindSquadByID(ctx, *input.SquadID)
		if err != nil {
			if errors.Is(err, repository.ErrSquadNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("squad not found")
			}

			return nil, errors.Wrap(err, "failed to load squad")
		}
		if squad.TeamID != teamID {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("squad belongs to a different team")
		}
	}

	membership := &entity.Membership{
		UserID:  principal.ID,
		TeamID:  teamID,
		SquadID: input.SquadID,
		Role:    entity.TeamRoleMember,
	}

	if err := srv.teamRepo.CreateMembership(ctx, membership); err != nil {
		srv.log(ctx).Warn("Failed to join team", slog.Any("teamID", teamID), slog.Any("userID", principal.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User joined team", slog.Any("teamID", teamID), slog.Any("userID", principal.ID))

	return membership, nil
}

// CreateSquad adds a squad to a team. Requires a content-managing team role.
func (srv *teamService) CreateSquad(ctx context.Context, principal *entity.User, teamID uuid.UUID, input usecase.CreateSquadInput) (*entity.Squad, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, true); err != nil {
		return nil, err
	}

	squad := &entity.Squad{
		TeamID: teamID,
		Name:   input.Name,
	}

	if err := srv.teamRepo.CreateSquad(ctx, squad); err != nil {
		return nil, err
	}

	return squad, nil
}

// CreateTeamWorkout publishes a workout template to a team. Requires a
// content-managing team role.
func (srv *teamService) CreateTeamWorkout(ctx context.Context, principal *entity.User, teamID uuid.UUID, input usecase.CreateTeamWorkoutInput) (*entity.TeamWorkout, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, true); err != nil {
		return nil, err
	}

	if len(input.Exercises) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one exercise is required")
	}

	if input.SquadID != nil {
		squad, err := srv.teamRepo.FindSquadByID(ctx, *input.SquadID)
		if err != nil {
			if errors.Is(err, repository.ErrSquadNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("squad not found")
			}

			return nil, errors.Wrap(err, "failed to load squad")
		}
		if squad.TeamID != teamID {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("squad belongs to a different team")
		}
	}

	workout := &entity.TeamWorkout{
		TeamID:      teamID,
		SquadID:     input.SquadID,
		CreatedBy:   principal.ID,
		Title:       input.Title,
		Description: input.Description,
		Exercises:   input.Exercises,
	}

	if err := srv.teamRepo.CreateTeamWorkout(ctx, workout); err != nil {
		return nil, errors.Wrap(err, "failed to create team workout")
	}

	srv.log(ctx).Info("Team workout published", slog.Any("teamID", teamID), slog.Any("workoutID", workout.ID))

	return workout, nil
}

// ListTeamWorkouts returns a team's workout templates. Requires membership.
func (srv *teamService) ListTeamWorkouts(ctx context.Context, principal *entity.User, teamID uuid.UUID) ([]*entity.TeamWorkout, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, false); err != nil {
		return nil, err
	}

	workouts, err := srv.teamRepo.ListTeamWorkouts(ctx, teamID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team workouts")
	}

	return workouts, nil
}

// AdoptTeamWorkout copies a team template into a personal workout owned by
// the principal. Requires membership.
func (srv *teamService) AdoptTeamWorkout(ctx context.Context, principal *entity.User, teamID, workoutID uuid.UUID) (*entity.Workout, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, false); err != nil {
		return nil, err
	}

	template, err := srv.teamRepo.FindTeamWorkoutByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamWorkoutNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("team workout not found")
		}

		return nil, errors.Wrap(err, "failed to load team workout")
	}
	if template.TeamID != teamID {
		return nil, domainerrors.ErrNotFound.WrapMessage("team workout not found")
	}

	workout := &entity.Workout{
		UserID:        principal.ID,
		TeamWorkoutID: &template.ID,
		Title:         template.Title,
		Description:   template.Description,
		Exercises:     template.Exercises,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		return nil, errors.Wrap(err, "failed to adopt team workout")
	}

	srv.log(ctx).Debug("Team workout adopted", slog.Any("templateID", template.ID), slog.Any("workoutID", workout.ID))

	return workout, nil
}

// CreateTeamAssessment publishes an assessment template to a team. Requires
// a content-managing team role.
func (srv *teamService) CreateTeamAssessment(ctx context.Context, principal *entity.User, teamID uuid.UUID, input usecase.CreateTeamAssessmentInput) (*entity.TeamAssessment, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, true); err != nil {
		return nil, err
	}

	assessment := &entity.TeamAssessment{
		TeamID:       teamID,
		CreatedBy:    principal.ID,
		Title:        input.Title,
		Instructions: input.Instructions,
		Parameters:   input.Parameters,
	}

	probe := entity.Assessment{Parameters: input.Parameters}
	if err := probe.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.teamRepo.CreateTeamAssessment(ctx, assessment); err != nil {
		return nil, errors.Wrap(err, "failed to create team assessment")
	}

	srv.log(ctx).Info("Team assessment published", slog.Any("teamID", teamID), slog.Any("assessmentID", assessment.ID))

	return assessment, nil
}

// ListTeamAssessments returns a team's assessment templates. Requires
// membership.
func (srv *teamService) ListTeamAssessments(ctx context.Context, principal *entity.User, teamID uuid.UUID) ([]*entity.TeamAssessment, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, false); err != nil {
		return nil, err
	}

	assessments, err := srv.teamRepo.ListTeamAssessments(ctx, teamID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team assessments")
	}

	return assessments, nil
}

// AdoptTeamAssessment copies a team template into a personal assessment
// owned by the principal. Requires membership.
func (srv *teamService) AdoptTeamAssessment(ctx context.Context, principal *entity.User, teamID, assessmentID uuid.UUID) (*entity.Assessment, error) {
	if _, err := srv.requireRole(ctx, principal, teamID, false); err != nil {
		return nil, err
	}

	template, err := srv.teamRepo.FindTeamAssessmentByID(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamAssessmentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("team assessment not found")
		}

		return nil, errors.Wrap(err, "failed to load team assessment")
	}
	if template.TeamID != teamID {
		return nil, domainerrors.ErrNotFound.WrapMessage("team assessment not found")
	}

	assessment := &entity.Assessment{
		UserID:           principal.ID,
		TeamAssessmentID: &template.ID,
		Title:            template.Title,
		Instructions:     template.Instructions,
		Parameters:       template.Parameters,
	}

	if err := srv.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, errors.Wrap(err, "failed to adopt team assessment")
	}

	srv.log(ctx).Debug("Team assessment adopted", slog.Any("templateID", template.ID), slog.Any("assessmentID", assessment.ID))

	return assessment, nil
}

// requireRole loads the principal's membership in the team. With
// manageContent set it additionally requires a role that may publish
// team-level content.
func (srv *teamService) requireRole(ctx context.Context, principal *entity.User, teamID uuid.UUID, manageContent bool) (*entity.Membership, error) {
	membership, err := srv.teamRepo.FindMembership(ctx, principal.ID, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrNotTeamMember.WrapMessage("membership required")
		}

		return nil, errors.Wrap(err, "failed to load membership")
	}

	if manageContent && !membership.Role.CanManageTeamContent() {
		return nil, domainerrors.ErrForbidden.WrapMessage("coach role required")
	}

	return membership, nil
}
