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

// assessmentRepository implements the repository.AssessmentRepository interface.
type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository is the constructor for assessmentRepository.
func NewAssessmentRepository(db *gorm.DB) repository.AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Create persists a new assessment.
func (repo *assessmentRepository) Create(ctx context.Context, assessment *entity.Assessment) error {
	assessmentM, err := fromAssessmentDomain(assessment)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(assessmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create assessment")
	}

	assessment.ID = assessmentM.ID
	assessment.CreatedAt = assessmentM.CreatedAt
	assessment.UpdatedAt = assessmentM.UpdatedAt

	return nil
}

// FindByID retrieves an assessment by its unique ID.
func (repo *assessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error) {
	var assessmentM model.AssessmentModel

	if err := repo.db.WithContext(ctx).First(&assessmentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssessmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assessment by id")
	}

	return toAssessmentDomain(&assessmentM)
}

// ListByUser returns the user's assessments, newest first.
func (repo *assessmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Assessment, error) {
	var assessmentMs []model.AssessmentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assessments")
	}

	assessments := make([]*entity.Assessment, 0, len(assessmentMs))
	for i := range assessmentMs {
		assessment, err := toAssessmentDomain(&assessmentMs[i])
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}

	return assessments, nil
}

// Update persists changes to an existing assessment, including recorded
// results.
func (repo *assessmentRepository) Update(ctx context.Context, assessment *entity.Assessment) error {
	assessmentM, err := fromAssessmentDomain(assessment)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AssessmentModel{}).
		Where("id = ?", assessment.ID).
		Updates(map[string]any{
			"title":        assessmentM.Title,
			"instructions": assessmentM.Instructions,
			"parameters":   assessmentM.Parameters,
			"results":      assessmentM.Results,
			"taken_at":     assessmentM.TakenAt,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update assessment")
	}

	return nil
}

// Delete removes an assessment by ID.
func (repo *assessmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AssessmentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete assessment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssessmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAssessmentDomain(data *model.AssessmentModel) (*entity.Assessment, error) {
	if data == nil {
		return nil, nil
	}

	assessment := &entity.Assessment{
		ID:               data.ID,
		UserID:           data.UserID,
		TeamAssessmentID: data.TeamAssessmentID,
		Title:            data.Title,
		Instructions:     data.Instructions,
		TakenAt:          data.TakenAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	if err := unmarshalJSON(data.Parameters, &assessment.Parameters); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(data.Results, &assessment.Results); err != nil {
		return nil, err
	}

	return assessment, nil
}

func fromAssessmentDomain(data *entity.Assessment) (*model.AssessmentModel, error) {
	if data == nil {
		return nil, nil
	}

	parameters, err := marshalJSON(data.Parameters)
	if err != nil {
		return nil, err
	}

	results, err := marshalJSON(data.Results)
	if err != nil {
		return nil, err
	}

	return &model.AssessmentModel{
		ID:               data.ID,
		UserID:           data.UserID,
		TeamAssessmentID: data.TeamAssessmentID,
		Title:            data.Title,
		Instructions:     data.Instructions,
		Parameters:       parameters,
		Results:          results,
		TakenAt:          data.TakenAt,
	}, nil
}
