package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assessmentService implements the AssessmentUsecase interface.
type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	logger         *slog.Logger
}

// AssessmentServiceParams holds dependencies for assessmentService, injected by Fx.
type AssessmentServiceParams struct {
	fx.In

	AssessmentRepo repository.AssessmentRepository
	Logger         *slog.Logger
}

// NewAssessmentService is the constructor for assessmentService.
func NewAssessmentService(params AssessmentServiceParams) usecase.AssessmentUsecase {
	return &assessmentService{
		assessmentRepo: params.AssessmentRepo,
		logger:         params.Logger,
	}
}

func (srv *assessmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAssessment validates the definition and persists it.
func (srv *assessmentService) CreateAssessment(ctx context.Context, principal *entity.User, input usecase.CreateAssessmentInput) (*entity.Assessment, error) {
	assessment := &entity.Assessment{
		UserID:       principal.ID,
		Title:        input.Title,
		Instructions: input.Instructions,
		Parameters:   input.Parameters,
	}

	if err := assessment.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.assessmentRepo.Create(ctx, assessment); err != nil {
		srv.log(ctx).Error("Failed to create assessment", slog.Any("userID", principal.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create assessment")
	}

	srv.log(ctx).Debug("Assessment created", slog.Any("assessmentID", assessment.ID))

	return assessment, nil
}

// GetAssessment loads an assessment owned by the principal.
func (srv *assessmentService) GetAssessment(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Assessment, error) {
	return srv.loadOwned(ctx, principal, id)
}

// ListAssessments returns all assessments owned by the principal.
func (srv *assessmentService) ListAssessments(ctx context.Context, principal *entity.User) ([]*entity.Assessment, error) {
	assessments, err := srv.assessmentRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assessments")
	}

	return assessments, nil
}

// UpdateAssessment applies a partial update to the assessment definition.
func (srv *assessmentService) UpdateAssessment(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.UpdateAssessmentInput) (*entity.Assessment, error) {
	assessment, err := srv.loadOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		assessment.Title = *input.Title
	}
	if input.Instructions != nil {
		assessment.Instructions = *input.Instructions
	}
	if input.Parameters != nil {
		assessment.Parameters = input.Parameters
	}

	if err := assessment.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.assessmentRepo.Update(ctx, assessment); err != nil {
		srv.log(ctx).Error("Failed to update assessment", slog.Any("assessmentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update assessment")
	}

	return assessment, nil
}

// RecordAssessmentResults validates and stores measured values for a taken
// assessment.
func (srv *assessmentService) RecordAssessmentResults(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.RecordAssessmentResultsInput) (*entity.Assessment, error) {
	if err := entity.ValidateResults(input.Results); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	assessment, err := srv.loadOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	takenAt := time.Now().UTC()
	if input.TakenAt != nil {
		takenAt = *input.TakenAt
	}

	assessment.Results = input.Results
	assessment.TakenAt = &takenAt

	if err := srv.assessmentRepo.Update(ctx, assessment); err != nil {
		srv.log(ctx).Error("Failed to record assessment results", slog.Any("assessmentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record assessment results")
	}

	return assessment, nil
}

// DeleteAssessment removes an assessment owned by the principal.
func (srv *assessmentService) DeleteAssessment(ctx context.Context, principal *entity.User, id uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := srv.assessmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("assessment not found")
		}

		return errors.Wrap(err, "failed to delete assessment")
	}

	return nil
}

func (srv *assessmentService) loadOwned(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Assessment, error) {
	assessment, err := srv.assessmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("assessment not found")
		}

		return nil, errors.Wrap(err, "failed to load assessment")
	}

	if assessment.UserID != principal.ID {
		return nil, domainerrors.ErrNotFound.WrapMessage("assessment not found")
	}

	return assessment, nil
}
