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

// checkInRepository implements the repository.CheckInRepository interface.
type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(db *gorm.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

// Create persists a new mood check-in.
func (repo *checkInRepository) Create(ctx context.Context, checkIn *entity.MoodCheckIn) error {
	checkInM, err := fromCheckInDomain(checkIn)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(checkInM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create mood check-in")
	}

	checkIn.ID = checkInM.ID
	checkIn.CreatedAt = checkInM.CreatedAt

	return nil
}

// FindByID retrieves a mood check-in by its unique ID.
func (repo *checkInRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodCheckIn, error) {
	var checkInM model.MoodCheckInModel

	if err := repo.db.WithContext(ctx).First(&checkInM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find mood check-in by id")
	}

	return toCheckInDomain(&checkInM)
}

// ListByUser returns the user's mood check-ins, newest first.
func (repo *checkInRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MoodCheckIn, error) {
	var checkInMs []model.MoodCheckInModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&checkInMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list mood check-ins")
	}

	return toCheckInDomainSlice(checkInMs)
}

// ListByUserBetween returns the user's mood check-ins created within [from, to).
func (repo *checkInRepository) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodCheckIn, error) {
	var checkInMs []model.MoodCheckInModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at").
		Find(&checkInMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list mood check-ins in range")
	}

	return toCheckInDomainSlice(checkInMs)
}

// Delete removes a mood check-in by ID.
func (repo *checkInRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MoodCheckInModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete mood check-in")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCheckInNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCheckInDomain(data *model.MoodCheckInModel) (*entity.MoodCheckIn, error) {
	if data == nil {
		return nil, nil
	}

	checkIn := &entity.MoodCheckIn{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}

	if err := unmarshalJSON(data.Mood, &checkIn.Mood); err != nil {
		return nil, err
	}

	return checkIn, nil
}

func toCheckInDomainSlice(data []model.MoodCheckInModel) ([]*entity.MoodCheckIn, error) {
	checkIns := make([]*entity.MoodCheckIn, 0, len(data))
	for i := range data {
		checkIn, err := toCheckInDomain(&data[i])
		if err != nil {
			return nil, err
		}
		checkIns = append(checkIns, checkIn)
	}

	return checkIns, nil
}

func fromCheckInDomain(data *entity.MoodCheckIn) (*model.MoodCheckInModel, error) {
	if data == nil {
		return nil, nil
	}

	mood, err := marshalJSON(data.Mood)
	if err != nil {
		return nil, err
	}

	return &model.MoodCheckInModel{
		ID:     data.ID,
		UserID: data.UserID,
		Mood:   mood,
	}, nil
}
