package postgres

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// teamRepository implements the repository.TeamRepository interface.
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository is the constructor for teamRepository.
func NewTeamRepository(db *gorm.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

// CreateTeam persists a new team. The unique index on name is the authority
// for duplicate detection.
func (repo *teamRepository) CreateTeam(ctx context.Context, team *entity.Team) error {
	teamM := fromTeamDomain(team)

	if err := repo.db.WithContext(ctx).Create(teamM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTeamNameTaken.WrapMessage("team name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create team")
	}

	team.ID = teamM.ID
	team.CreatedAt = teamM.CreatedAt

	return nil
}

// FindTeamByID retrieves a team by ID, preloading its squads.
func (repo *teamRepository) FindTeamByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	var teamM model.TeamModel

	if err := repo.db.WithContext(ctx).
		Preload("Squads").
		First(&teamM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamNotFound
		}

		return nil, errors.Wrap(err, "failed to find team by id")
	}

	return toTeamDomain(&teamM), nil
}

// ListTeams returns all teams ordered by name.
func (repo *teamRepository) ListTeams(ctx context.Context) ([]*entity.Team, error) {
	var teamMs []model.TeamModel

	if err := repo.db.WithContext(ctx).Order("name").Find(&teamMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	teams := make([]*entity.Team, 0, len(teamMs))
	for i := range teamMs {
		teams = append(teams, toTeamDomain(&teamMs[i]))
	}

	return teams, nil
}

// CreateSquad persists a new squad within a team. Squad names are unique
// per team, enforced by the composite index.
func (repo *teamRepository) CreateSquad(ctx context.Context, squad *entity.Squad) error {
	squadM := fromSquadDomain(squad)

	if err := repo.db.WithContext(ctx).Create(squadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSquadNameTaken.WrapMessage("squad name already exists in team")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTeamNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create squad")
	}

	squad.ID = squadM.ID

	return nil
}

// FindSquadByID retrieves a squad by ID.
func (repo *teamRepository) FindSquadByID(ctx context.Context, id uuid.UUID) (*entity.Squad, error) {
	var squadM model.SquadModel

	if err := repo.db.WithContext(ctx).First(&squadM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSquadNotFound
		}

		return nil, errors.Wrap(err, "failed to find squad by id")
	}

	return toSquadDomain(&squadM), nil
}

// CreateMembership persists a user joining a team. The composite unique
// index on (user, team) closes the concurrent-join race.
func (repo *teamRepository) CreateMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyMember.WrapMessage("membership already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTeamNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.ID = membershipM.ID
	membership.JoinedAt = membershipM.JoinedAt

	return nil
}

// FindMembership returns the membership of a user in a team.
func (repo *teamRepository) FindMembership(ctx context.Context, userID, teamID uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		First(&membershipM, "user_id = ? AND team_id = ?", userID, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// ListMembershipsByUser returns all team memberships held by a user.
func (repo *teamRepository) ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var membershipMs []model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at").
		Find(&membershipMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	memberships := make([]*entity.Membership, 0, len(membershipMs))
	for i := range membershipMs {
		memberships = append(memberships, toMembershipDomain(&membershipMs[i]))
	}

	return memberships, nil
}

// CreateTeamWorkout persists a workout template published to a team.
func (repo *teamRepository) CreateTeamWorkout(ctx context.Context, workout *entity.TeamWorkout) error {
	workoutM, err := fromTeamWorkoutDomain(workout)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTeamNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create team workout")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt

	return nil
}

// FindTeamWorkoutByID retrieves a team workout template by ID.
func (repo *teamRepository) FindTeamWorkoutByID(ctx context.Context, id uuid.UUID) (*entity.TeamWorkout, error) {
	var workoutM model.TeamWorkoutModel

	if err := repo.db.WithContext(ctx).First(&workoutM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find team workout by id")
	}

	return toTeamWorkoutDomain(&workoutM)
}

// ListTeamWorkouts returns a team's workout templates, newest first.
func (repo *teamRepository) ListTeamWorkouts(ctx context.Context, teamID uuid.UUID) ([]*entity.TeamWorkout, error) {
	var workoutMs []model.TeamWorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&workoutMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list team workouts")
	}

	workouts := make([]*entity.TeamWorkout, 0, len(workoutMs))
	for i := range workoutMs {
		workout, err := toTeamWorkoutDomain(&workoutMs[i])
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	return workouts, nil
}

// CreateTeamAssessment persists an assessment template published to a team.
func (repo *teamRepository) CreateTeamAssessment(ctx context.Context, assessment *entity.TeamAssessment) error {
	assessmentM, err := fromTeamAssessmentDomain(assessment)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(assessmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTeamNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create team assessment")
	}

	assessment.ID = assessmentM.ID
	assessment.CreatedAt = assessmentM.CreatedAt

	return nil
}

// FindTeamAssessmentByID retrieves a team assessment template by ID.
func (repo *teamRepository) FindTeamAssessmentByID(ctx context.Context, id uuid.UUID) (*entity.TeamAssessment, error) {
	var assessmentM model.TeamAssessmentModel

	if err := repo.db.WithContext(ctx).First(&assessmentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamAssessmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find team assessment by id")
	}

	return toTeamAssessmentDomain(&assessmentM)
}

// ListTeamAssessments returns a team's assessment templates, newest first.
func (repo *teamRepository) ListTeamAssessments(ctx context.Context, teamID uuid.UUID) ([]*entity.TeamAssessment, error) {
	var assessmentMs []model.TeamAssessmentModel

	if err := repo.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&assessmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list team assessments")
	}

	assessments := make([]*entity.TeamAssessment, 0, len(assessmentMs))
	for i := range assessmentMs {
		assessment, err := toTeamAssessmentDomain(&assessmentMs[i])
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	return assessments, nil
}

// --- Mapper Functions ---

func toTeamDomain(data *model.TeamModel) *entity.Team {
	if data == nil {
		return nil
	}

	team := &entity.Team{
		ID:        data.ID,
		Name:      data.Name,
		City:      data.City,
		CreatedAt: data.CreatedAt,
	}

	for i := range data.Squads {
		team.Squads = append(team.Squads, toSquadDomain(&data.Squads[i]))
	}

	return team
}

func fromTeamDomain(data *entity.Team) *model.TeamModel {
	if data == nil {
		return nil
	}

	return &model.TeamModel{
		ID:   data.ID,
		Name: data.Name,
		City: data.City,
	}
}

func toSquadDomain(data *model.SquadModel) *entity.Squad {
	if data == nil {
		return nil
	}

	return &entity.Squad{
		ID:     data.ID,
		TeamID: data.TeamID,
		Name:   data.Name,
	}
}

func fromSquadDomain(data *entity.Squad) *model.SquadModel {
	if data == nil {
		return nil
	}

	return &model.SquadModel{
		ID:     data.ID,
		TeamID: data.TeamID,
		Name:   data.Name,
	}
}

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:       data.ID,
		UserID:   data.UserID,
		TeamID:   data.TeamID,
		SquadID:  data.SquadID,
		Role:     entity.TeamRole(data.Role),
		JoinedAt: data.JoinedAt,
	}
}

func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		ID:      data.ID,
		UserID:  data.UserID,
		TeamID:  data.TeamID,
		SquadID: data.SquadID,
		Role:    string(data.Role),
	}
}

func toTeamWorkoutDomain(data *model.TeamWorkoutModel) (*entity.TeamWorkout, error) {
	if data == nil {
		return nil, nil
	}

	workout := &entity.TeamWorkout{
		ID:          data.ID,
		TeamID:      data.TeamID,
		SquadID:     data.SquadID,
		CreatedBy:   data.CreatedBy,
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}

	if err := unmarshalJSON(data.Exercises, &workout.Exercises); err != nil {
		return nil, err
	}

	return workout, nil
}

func fromTeamWorkoutDomain(data *entity.TeamWorkout) (*model.TeamWorkoutModel, error) {
	if data == nil {
		return nil, nil
	}

	exercises, err := marshalJSON(data.Exercises)
	if err != nil {
		return nil, err
	}

	return &model.TeamWorkoutModel{
		ID:          data.ID,
		TeamID:      data.TeamID,
		SquadID:     data.SquadID,
		CreatedBy:   data.CreatedBy,
		Title:       data.Title,
		Description: data.Description,
		Exercises:   exercises,
	}, nil
}

func toTeamAssessmentDomain(data *model.TeamAssessmentModel) (*entity.TeamAssessment, error) {
	if data == nil {
		return nil, nil
	}

	assessment := &entity.TeamAssessment{
		ID:           data.ID,
		TeamID:       data.TeamID,
		CreatedBy:    data.CreatedBy,
		Title:        data.Title,
		Instructions: data.Instructions,
		CreatedAt:    data.CreatedAt,
	}

	if err := unmarshalJSON(data.Parameters, &assessment.Parameters); err != nil {
		return nil, err
	}

	return assessment, nil
}

func fromTeamAssessmentDomain(data *entity.TeamAssessment) (*model.TeamAssessmentModel, error) {
	if data == nil {
		return nil, nil
	}

	parameters, err := marshalJSON(data.Parameters)
	if err != nil {
		return nil, err
	}

	return &model.TeamAssessmentModel{
		ID:           data.ID,
		TeamID:       data.TeamID,
		CreatedBy:    data.CreatedBy,
		Title:        data.Title,
		Instructions: data.Instructions,
		Parameters:   parameters,
	}, nil
}
