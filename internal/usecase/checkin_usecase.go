package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCheckInInput defines the data required to record a mood check-in.
type CreateCheckInInput struct {
	Mood map[string]any
}

// ListCheckInsInput optionally bounds the listing to a time range. Nil
// bounds are open-ended.
type ListCheckInsInput struct {
	From *time.Time
	To   *time.Time
}

// CheckInUsecase defines mood check-in operations scoped to the
// authenticated principal.
type CheckInUsecase interface {
	CreateCheckIn(ctx context.Context, principal *entity.User, input CreateCheckInInput) (*entity.MoodCheckIn, error)
	ListCheckIns(ctx context.Context, principal *entity.User, input ListCheckInsInput) ([]*entity.MoodCheckIn, error)
	DeleteCheckIn(ctx context.Context, principal *entity.User, id uuid.UUID) error
}
