package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

// summaryPeriods is the order in which due periods are evaluated.
var summaryPeriods = []entity.SummaryPeriod{
	entity.SummaryDaily,
	entity.SummaryWeekly,
	entity.SummaryMonthly,
}

// SummaryService implements both SummaryUsecase (read side) and
// SummaryGenerator (the worker's write side).
type SummaryService struct {
	userRepo    repository.UserRepository
	summaryRepo repository.SummaryRepository
	checkInRepo repository.CheckInRepository
	journalRepo repository.JournalRepository
	workoutRepo repository.WorkoutRepository
	goalRepo    repository.GoalRepository
	logger      *slog.Logger
}

// SummaryServiceParams holds dependencies for SummaryService, injected by Fx.
type SummaryServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SummaryRepo repository.SummaryRepository
	CheckInRepo repository.CheckInRepository
	JournalRepo repository.JournalRepository
	WorkoutRepo repository.WorkoutRepository
	GoalRepo    repository.GoalRepository
	Logger      *slog.Logger
}

// NewSummaryService is the constructor for SummaryService.
func NewSummaryService(params SummaryServiceParams) *SummaryService {
	return &SummaryService{
		userRepo:    params.UserRepo,
		summaryRepo: params.SummaryRepo,
		checkInRepo: params.CheckInRepo,
		journalRepo: params.JournalRepo,
		workoutRepo: params.WorkoutRepo,
		goalRepo:    params.GoalRepo,
		logger:      params.Logger,
	}
}

// NewSummaryUsecase exposes the service under its read interface for Fx.
func NewSummaryUsecase(srv *SummaryService) usecase.SummaryUsecase {
	return srv
}

// NewSummaryGenerator exposes the service under its generator interface for Fx.
func NewSummaryGenerator(srv *SummaryService) usecase.SummaryGenerator {
	return srv
}

func (srv *SummaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSummaries returns the principal's summaries, optionally filtered by
// period.
func (srv *SummaryService) ListSummaries(ctx context.Context, principal *entity.User, period entity.SummaryPeriod) ([]*entity.Summary, error) {
	if period != "" && !period.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown summary period")
	}

	summaries, err := srv.summaryRepo.ListByUser(ctx, principal.ID, period)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list summaries")
	}

	return summaries, nil
}

// GetSummary loads a summary owned by the principal.
func (srv *SummaryService) GetSummary(ctx context.Context, principal *entity.User, id uuid.UUID) (*entity.Summary, error) {
	summary, err := srv.summaryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSummaryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("summary not found")
		}

		return nil, errors.Wrap(err, "failed to load summary")
	}

	if summary.UserID != principal.ID {
		return nil, domainerrors.ErrNotFound.WrapMessage("summary not found")
	}

	return summary, nil
}

// GenerateDueSummaries scans all users and writes a summary for every
// period whose window has elapsed since that user's latest summary. A
// failure for one user is logged and does not stop the sweep.
func (srv *SummaryService) GenerateDueSummaries(ctx context.Context, now time.Time) (int, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list users for summary generation")
	}

	written := 0
	for _, user := range users {
		for _, period := range summaryPeriods {
			due, err := srv.isDue(ctx, user.ID, period, now)
			if err != nil {
				srv.log(ctx).Error("Failed to check summary due state",
					slog.Any("userID", user.ID), slog.String("period", string(period)), slog.Any("error", err))

				continue
			}
			if !due {
				continue
			}

			if err := srv.generateOne(ctx, user, period, now); err != nil {
				srv.log(ctx).Error("Failed to generate summary",
					slog.Any("userID", user.ID), slog.String("period", string(period)), slog.Any("error", err))

				continue
			}
			written++
		}
	}

	if written > 0 {
		srv.log(ctx).Info("Summary sweep completed", slog.Int("written", written))
	}

	return written, nil
}

func (srv *SummaryService) isDue(ctx context.Context, userID uuid.UUID, period entity.SummaryPeriod, now time.Time) (bool, error) {
	latest, err := srv.summaryRepo.FindLatest(ctx, userID, period)
	if errors.Is(err, repository.ErrSummaryNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return now.Sub(latest.CreatedAt) >= period.Duration(), nil
}

func (srv *SummaryService) generateOne(ctx context.Context, user *entity.User, period entity.SummaryPeriod, now time.Time) error {
	from := now.Add(-period.Duration())

	checkIns, err := srv.checkInRepo.ListByUserBetween(ctx, user.ID, from, now)
	if err != nil {
		return errors.Wrap(err, "failed to load mood check-ins for summary")
	}

	journals, err := srv.journalRepo.ListByUserBetween(ctx, user.ID, from, now)
	if err != nil {
		return errors.Wrap(err, "failed to load journal entries for summary")
	}

	workouts, err := srv.workoutRepo.ListByUserBetween(ctx, user.ID, from, now)
	if err != nil {
		return errors.Wrap(err, "failed to load workouts for summary")
	}

	goals, err := srv.goalRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load goals for summary")
	}

	summary := &entity.Summary{
		UserID:  user.ID,
		Period:  period,
		Mood:    summarizeMood(checkIns),
		Journal: summarizeJournal(journals),
		Workout: summarizeWorkouts(workouts),
		Goals:   summarizeGoals(goals),
	}
	summary.General = summarizeGeneral(len(checkIns), len(journals), len(workouts), period)

	if err := srv.summaryRepo.Create(ctx, summary); err != nil {
		return errors.Wrap(err, "failed to persist summary")
	}

	return nil
}

// --- Section builders ---

func summarizeMood(checkIns []*entity.MoodCheckIn) string {
	if len(checkIns) == 0 {
		return "No mood check-ins recorded in this period."
	}

	return fmt.Sprintf("%d mood check-in(s) recorded.", len(checkIns))
}

func summarizeJournal(journals []*entity.JournalEntry) string {
	if len(journals) == 0 {
		return "No journal entries written in this period."
	}

	return fmt.Sprintf("%d journal entry(ies) written.", len(journals))
}

func summarizeWorkouts(workouts []*entity.Workout) string {
	if len(workouts) == 0 {
		return "No workouts logged in this period."
	}

	completed := 0
	for _, w := range workouts {
		if len(w.Results) > 0 {
			completed++
		}
	}

	return fmt.Sprintf("%d workout(s) logged, %d with recorded results.", len(workouts), completed)
}

func summarizeGoals(goals []*entity.Goal) string {
	if len(goals) == 0 {
		return "No goals set."
	}

	counts := map[entity.GoalStatus]int{}
	for _, g := range goals {
		counts[g.Status]++
	}

	parts := []string{}
	for _, status := range []entity.GoalStatus{entity.GoalPending, entity.GoalInProgress, entity.GoalCompleted} {
		if counts[status] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
		}
	}

	return fmt.Sprintf("%d goal(s): %s.", len(goals), strings.Join(parts, ", "))
}

func summarizeGeneral(checkIns, journals, workouts int, period entity.SummaryPeriod) string {
	total := checkIns + journals + workouts
	if total == 0 {
		return fmt.Sprintf("Quiet %s period with no recorded activity.", period)
	}

	return fmt.Sprintf("Active %s period with %d recorded item(s).", period, total)
}
