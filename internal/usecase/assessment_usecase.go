package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAssessmentInput defines the data required to create an assessment.
type CreateAssessmentInput struct {
	Title        string
	Instructions string
	Parameters   []entity.AssessmentParameter
}

// UpdateAssessmentInput defines a partial update to an assessment
// definition. Nil fields are left unchanged.
type UpdateAssessmentInput struct {
	Title        *string
	Instructions *string
	Parameters   []entity.AssessmentParameter
}

// RecordAssessmentResultsInput carries the measured values of a taken
// assessment. TakenAt defaults to the current time when nil.
type RecordAssessmentResultsInput struct {
	Results []entity.MetricResult
	TakenAt *time.Time
}

// AssessmentUsecase defines assessment operations scoped to the
// authenticated principal. Accessors enforce ownership; an assessment
// belonging to another user is reported as not found.
type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, principal *entity.User, input CreateAssessmentInput) (*entity.Assessment, error)
	GetAssessment(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Assessment, error)
	ListAssessments(ctx context.Context, principal *entity.User) ([]*entity.Assessment, error)
	UpdateAssessment(ctx context.Context, principal *entity.User, id uuid.UUID, input UpdateAssessmentInput) (*entity.Assessment, error)
	RecordAssessmentResults(ctx context.Context, principal *entity.User, id uuid.UUID, input RecordAssessmentResultsInput) (*entity.Assessment, error)
	DeleteAssessment(ctx context.Context, principal *entity.User, id uuid.UUID) error
}
