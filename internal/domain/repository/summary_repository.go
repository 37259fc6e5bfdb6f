package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSummaryNotFound is returned when a summary does not exist.
var ErrSummaryNotFound = errors.New("summary not found")

// SummaryRepository defines persistence operations for generated summaries.
type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.Summary) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error)
	// ListByUser returns the user's summaries, optionally filtered by period
	// (empty period means all).
	ListByUser(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod) ([]*entity.Summary, error)
	// FindLatest returns the most recent summary of the given period for the
	// user, or ErrSummaryNotFound if none has been generated yet.
	FindLatest(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod) (*entity.Summary, error)
}
