package impl

import (
	"context"
	"log/slog"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkInService implements the CheckInUsecase interface.
type checkInService struct {
	checkInRepo repository.CheckInRepository
	logger      *slog.Logger
}

// CheckInServiceParams holds dependencies for checkInService, injected by Fx.
type CheckInServiceParams struct {
	fx.In

	CheckInRepo repository.CheckInRepository
	Logger      *slog.Logger
}

// NewCheckInService is the constructor for checkInService.
func NewCheckInService(params CheckInServiceParams) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo: params.CheckInRepo,
		logger:      params.Logger,
	}
}

func (srv *checkInService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckIn records a mood check-in for the principal.
func (srv *checkInService) CreateCheckIn(ctx context.Context, principal *entity.User, input usecase.CreateCheckInInput) (*entity.MoodCheckIn, error) {
	if len(input.Mood) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("mood payload is required")
	}

	checkIn := &entity.MoodCheckIn{
		UserID: principal.ID,
		Mood:   input.Mood,
	}

	if err := srv.checkInRepo.Create(ctx, checkIn); err != nil {
		srv.log(ctx).Error("Failed to create mood check-in", slog.Any("userID", principal.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create mood check-in")
	}

	return checkIn, nil
}

// ListCheckIns returns the principal's check-ins, optionally bounded to a
// time range.
func (srv *checkInService) ListCheckIns(ctx context.Context, principal *entity.User, input usecase.ListCheckInsInput) ([]*entity.MoodCheckIn, error) {
	if input.From != nil || input.To != nil {
		from, to := rangeBounds(input.From, input.To)
		checkIns, err := srv.checkInRepo.ListByUserBetween(ctx, principal.ID, from, to)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list mood check-ins in range")
		}

		return checkIns, nil
	}

	checkIns, err := srv.checkInRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mood check-ins")
	}

	return checkIns, nil
}

// DeleteCheckIn removes a check-in owned by the principal.
func (srv *checkInService) DeleteCheckIn(ctx context.Context, principal *entity.User, id uuid.UUID) error {
	checkIn, err := srv.checkInRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("mood check-in not found")
		}

		return errors.Wrap(err, "failed to load mood check-in")
	}

	if checkIn.UserID != principal.ID {
		return domainerrors.ErrNotFound.WrapMessage("mood check-in not found")
	}

	if err := srv.checkInRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("mood check-in not found")
		}

		return errors.Wrap(err, "failed to delete mood check-in")
	}

	return nil
}
