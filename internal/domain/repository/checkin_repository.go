package repository

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCheckInNotFound is returned when a mood check-in does not exist.
var ErrCheckInNotFound = errors.New("mood check-in not found")

// CheckInRepository defines persistence operations for mood check-ins.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *entity.MoodCheckIn) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MoodCheckIn, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MoodCheckIn, error)
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MoodCheckIn, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
