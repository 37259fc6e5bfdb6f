package usecase

import (
	"context"
	"time"

	"fittrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SummaryUsecase exposes read access to generated summaries. Summaries are
// produced by the background generator and are not writable through the API.
type SummaryUsecase interface {
	// ListSummaries returns the principal's summaries, optionally filtered
	// by period (empty means all).
	ListSummaries(ctx context.Context, principal *entity.User, period entity.SummaryPeriod) ([]*entity.Summary, error)
	GetSummary(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Summary, error)
}

// SummaryGenerator materializes periodic digests of each user's activity.
// The worker delivery drives it on a ticker.
type SummaryGenerator interface {
	// GenerateDueSummaries scans all users and creates a summary for every
	// period whose window has elapsed since the user's latest summary of
	// that period. It returns the number of summaries written.
	GenerateDueSummaries(ctx context.Context, now time.Time) (int, error)
}
