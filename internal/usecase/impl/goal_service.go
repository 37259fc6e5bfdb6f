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

// goalService implements the GoalUsecase interface.
type goalService struct {
	goalRepo repository.GoalRepository
	logger   *slog.Logger
}

// GoalServiceParams holds dependencies for goalService, injected by Fx.
type GoalServiceParams struct {
	fx.In

	GoalRepo repository.GoalRepository
	Logger   *slog.Logger
}

// NewGoalService is the constructor for goalService.
func NewGoalService(params GoalServiceParams) usecase.GoalUsecase {
	return &goalService{
		goalRepo: params.GoalRepo,
		logger:   params.Logger,
	}
}

func (srv *goalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGoal persists a new goal. New goals always start pending.
func (srv *goalService) CreateGoal(ctx context.Context, principal *entity.User, input usecase.CreateGoalInput) (*entity.Goal, error) {
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("end date precedes start date")
	}

	goal := &entity.Goal{
		UserID:      principal.ID,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      entity.GoalPending,
	}

	if err := srv.goalRepo.Create(ctx, goal); err != nil {
		srv.log(ctx).Error("Failed to create goal", slog.Any("userID", principal.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create goal")
	}

	return goal, nil
}

// GetGoal loads a goal owned by the principal.
func (srv *goalService) GetGoal(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Goal, error) {
	return srv.loadOwned(ctx, principal, id)
}

// ListGoals returns all goals owned by the principal.
func (srv *goalService) ListGoals(ctx context.Context, principal *entity.User) ([]*entity.Goal, error) {
	goals, err := srv.goalRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list goals")
	}

	return goals, nil
}

// UpdateGoal applies a partial update, including status transitions.
func (srv *goalService) UpdateGoal(ctx context.Context, principal *entity.User, id uuid.UUID, input usecase.UpdateGoalInput) (*entity.Goal, error) {
	goal, err := srv.loadOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.EndDate != nil {
		if input.EndDate.Before(goal.StartDate) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("end date precedes start date")
		}
		goal.EndDate = input.EndDate
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown goal status")
		}
		goal.Status = *input.Status
	}

	if err := srv.goalRepo.Update(ctx, goal); err != nil {
		srv.log(ctx).Error("Failed to update goal", slog.Any("goalID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update goal")
	}

	return goal, nil
}

// DeleteGoal removes a goal owned by the principal.
func (srv *goalService) DeleteGoal(ctx context.Context, principal *entity.User, id uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := srv.goalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("goal not found")
		}

		return errors.Wrap(err, "failed to delete goal")
	}

	return nil
}

func (srv *goalService) loadOwned(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Goal, error) {
	goal, err := srv.goalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("goal not found")
		}

		return nil, errors.Wrap(err, "failed to load goal")
	}

	if goal.UserID != principal.ID {
		return nil, domainerrors.ErrNotFound.WrapMessage("goal not found")
	}

	return goal, nil
}
