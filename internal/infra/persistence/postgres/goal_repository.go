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

// goalRepository implements the repository.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository is the constructor for goalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

// Create persists a new goal.
func (repo *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalM := fromGoalDomain(goal)

	if err := repo.db.WithContext(ctx).Create(goalM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create goal")
	}

	goal.ID = goalM.ID

	return nil
}

// FindByID retrieves a goal by its unique ID.
func (repo *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalM model.GoalModel

	if err := repo.db.WithContext(ctx).First(&goalM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoalNotFound
		}

		return nil, errors.Wrap(err, "failed to find goal by id")
	}

	return toGoalDomain(&goalM), nil
}

// ListByUser returns the user's goals, newest first.
func (repo *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalMs []model.GoalModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&goalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list goals")
	}

	goals := make([]*entity.Goal, 0, len(goalMs))
	for i := range goalMs {
		goals = append(goals, toGoalDomain(&goalMs[i]))
	}

	return goals, nil
}

// Update modifies an existing goal.
func (repo *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalM := fromGoalDomain(goal)

	if err := repo.db.WithContext(ctx).Save(goalM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update goal")
	}

	return nil
}

// Delete removes a goal by ID.
func (repo *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete goal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGoalNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGoalDomain(data *model.GoalModel) *entity.Goal {
	if data == nil {
		return nil
	}

	return &entity.Goal{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Status:      entity.GoalStatus(data.Status),
	}
}

func fromGoalDomain(data *entity.Goal) *model.GoalModel {
	if data == nil {
		return nil
	}

	return &model.GoalModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Status:      string(data.Status),
	}
}
