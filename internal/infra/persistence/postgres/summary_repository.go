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

// summaryRepository implements the repository.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository is the constructor for summaryRepository.
func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

// Create persists a newly generated summary.
func (repo *summaryRepository) Create(ctx context.Context, summary *entity.Summary) error {
	summaryM := fromSummaryDomain(summary)

	if err := repo.db.WithContext(ctx).Create(summaryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create summary")
	}

	summary.ID = summaryM.ID
	summary.CreatedAt = summaryM.CreatedAt

	return nil
}

// FindByID retrieves a summary by its unique ID.
func (repo *summaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error) {
	var summaryM model.SummaryModel

	if err := repo.db.WithContext(ctx).First(&summaryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSummaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find summary by id")
	}

	return toSummaryDomain(&summaryM), nil
}

// ListByUser returns the user's summaries, newest first. An empty period
// returns summaries of every cadence.
func (repo *summaryRepository) ListByUser(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod) ([]*entity.Summary, error) {
	var summaryMs []model.SummaryModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if period != "" {
		query = query.Where("period = ?", string(period))
	}

	if err := query.Order("created_at DESC").Find(&summaryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list summaries")
	}

	summaries := make([]*entity.Summary, 0, len(summaryMs))
	for i := range summaryMs {
		summaries = append(summaries, toSummaryDomain(&summaryMs[i]))
	}

	return summaries, nil
}

// FindLatest returns the most recent summary of the given period for the user.
func (repo *summaryRepository) FindLatest(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod) (*entity.Summary, error) {
	var summaryM model.SummaryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND period = ?", userID, string(period)).
		Order("created_at DESC").
		First(&summaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSummaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest summary")
	}

	return toSummaryDomain(&summaryM), nil
}

// --- Mapper Functions ---

func toSummaryDomain(data *model.SummaryModel) *entity.Summary {
	if data == nil {
		return nil
	}

	return &entity.Summary{
		ID:        data.ID,
		UserID:    data.UserID,
		Period:    entity.SummaryPeriod(data.Period),
		Mood:      data.Mood,
		Journal:   data.Journal,
		Workout:   data.Workout,
		Goals:     data.Goals,
		General:   data.General,
		CreatedAt: data.CreatedAt,
	}
}

func fromSummaryDomain(data *entity.Summary) *model.SummaryModel {
	if data == nil {
		return nil
	}

	return &model.SummaryModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Period:  string(data.Period),
		Mood:    data.Mood,
		Journal: data.Journal,
		Workout: data.Workout,
		Goals:   data.Goals,
		General: data.General,
	}
}
