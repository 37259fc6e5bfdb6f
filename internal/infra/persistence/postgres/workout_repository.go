package postgres

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the repository.WorkoutRepository interface.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

// Create persists a new workout.
func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM, err := fromWorkoutDomain(workout)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt
	workout.UpdatedAt = workoutM.UpdatedAt

	return nil
}

// FindByID retrieves a workout by its unique ID.
func (repo *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workout, error) {
	var workoutM model.WorkoutModel

	if err := repo.db.WithContext(ctx).First(&workoutM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find workout by id")
	}

	return toWorkoutDomain(&workoutM)
}

// ListByUser returns the user's workouts, newest first.
func (repo *workoutRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workout, error) {
	var workoutMs []model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workoutMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return toWorkoutDomainSlice(workoutMs)
}

// ListByUserBetween returns the user's workouts created within [from, to).
func (repo *workoutRepository) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Workout, error) {
	var workoutMs []model.WorkoutModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at").
		Find(&workoutMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workouts in range")
	}

	return toWorkoutDomainSlice(workoutMs)
}

// Update modifies an existing workout.
func (repo *workoutRepository) Update(ctx context.Context, workout *entity.Workout) error {
	workoutM, err := fromWorkoutDomain(workout)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(workoutM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update workout")
	}

	workout.UpdatedAt = workoutM.UpdatedAt

	return nil
}

// Delete removes a workout by ID.
func (repo *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.WorkoutModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workout")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkoutNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWorkoutDomain(data *model.WorkoutModel) (*entity.Workout, error) {
	if data == nil {
		return nil, nil
	}

	workout := &entity.Workout{
		ID:            data.ID,
		UserID:        data.UserID,
		TeamWorkoutID: data.TeamWorkoutID,
		Title:         data.Title,
		Description:   data.Description,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if err := unmarshalJSON(data.Exercises, &workout.Exercises); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(data.Results, &workout.Results); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(data.UpdateLog, &workout.UpdateLog); err != nil {
		return nil, err
	}

	return workout, nil
}

func toWorkoutDomainSlice(data []model.WorkoutModel) ([]*entity.Workout, error) {
	workouts := make([]*entity.Workout, 0, len(data))
	for i := range data {
		workout, err := toWorkoutDomain(&data[i])
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	return workouts, nil
}

func fromWorkoutDomain(data *entity.Workout) (*model.WorkoutModel, error) {
	if data == nil {
		return nil, nil
	}

	exercises, err := marshalJSON(data.Exercises)
	if err != nil {
		return nil, err
	}
	results, err := marshalJSON(data.Results)
	if err != nil {
		return nil, err
	}
	updateLog, err := marshalJSON(data.UpdateLog)
	if err != nil {
		return nil, err
	}

	return &model.WorkoutModel{
		ID:            data.ID,
		UserID:        data.UserID,
		TeamWorkoutID: data.TeamWorkoutID,
		Title:         data.Title,
		Description:   data.Description,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Exercises:     exercises,
		Results:       results,
		UpdateLog:     updateLog,
	}, nil
}
