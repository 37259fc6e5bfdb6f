package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAssessmentNotFound is returned when an assessment does not exist.
var ErrAssessmentNotFound = errors.New("assessment not found")

// AssessmentRepository defines persistence operations for assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Assessment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Assessment, error)
	Update(ctx context.Context, assessment *entity.Assessment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
